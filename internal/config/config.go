package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type MarketplaceConfig struct {
	Env           string `yaml:"env"`
	HTTPServer    `yaml:"http_server"`
	MarketplaceDB `yaml:"marketplace_db"`
	LogConfig     `yaml:"log_config"`
	SMTP          `yaml:"smtp"`
	KafkaService  `yaml:"kafka-service"`
	Platform      `yaml:"platform"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type MarketplaceDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type SMTP struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic"`
}

// Platform holds the public base URL used when composing assignment
// links in notification emails.
type Platform struct {
	BaseURL string `yaml:"base_url"`
}

func MustLoad() *MarketplaceConfig {

	// Processing env config variable and file
	configPath := os.Getenv("MARKETPLACE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("MARKETPLACE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg MarketplaceConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
