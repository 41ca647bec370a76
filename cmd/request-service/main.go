package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/translationbridge/request-service/internal/config"
	"github.com/translationbridge/request-service/internal/delivery/http/handlers"
	"github.com/translationbridge/request-service/internal/infrastructure/kafka"
	"github.com/translationbridge/request-service/internal/infrastructure/mailer"
	"github.com/translationbridge/request-service/internal/infrastructure/metrics"
	"github.com/translationbridge/request-service/internal/infrastructure/migrate"
	"github.com/translationbridge/request-service/internal/infrastructure/postgres"
	"github.com/translationbridge/request-service/internal/infrastructure/postgres/repository"
	"github.com/translationbridge/request-service/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file loaded")
	}
	// Reading config
	cfg := config.MustLoad()
	initLogger(cfg)

	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.MarketplaceDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.MarketplaceDB.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Init repositories
	requestRepo := repository.NewDefaultRequestRepository(db)
	translatorRepo := repository.NewDefaultTranslatorRepository(db)
	invoiceRepo := repository.NewDefaultInvoiceRepository(db)
	directoryRepo := repository.NewDefaultDirectoryRepository(db)

	// Init email notifier
	notifier, err := mailer.NewSMTPSender(&cfg.SMTP)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init smtp sender")
	}

	// Init kafka publisher for lifecycle events
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	publisher := kafka.NewRequestPublisher(brokers, cfg.KafkaService.Topic)
	defer publisher.Close()

	lifecycleMetrics := metrics.NewLifecycleMetrics()

	// Init usecases
	requestUsecase := usecase.NewDefaultRequestUsecase(
		requestRepo,
		translatorRepo,
		invoiceRepo,
		notifier,
		publisher,
		lifecycleMetrics,
		cfg.Platform.BaseURL,
	)
	invoiceUsecase := usecase.NewDefaultInvoiceUsecase(
		invoiceRepo,
		requestRepo,
		notifier,
		publisher,
		lifecycleMetrics,
	)
	translatorUsecase := usecase.NewDefaultTranslatorUsecase(translatorRepo, directoryRepo)
	directoryUsecase := usecase.NewDefaultDirectoryUsecase(directoryRepo)

	port, err := strconv.Atoi(cfg.HTTPServer.Port)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid http port")
	}

	data := &handlers.Data{
		Port:        port,
		Requests:    requestUsecase,
		Invoices:    invoiceUsecase,
		Translators: translatorUsecase,
		Directory:   directoryUsecase,
	}
	if err := handlers.StartWebServer(data); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func initLogger(cfg *config.MarketplaceConfig) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogConfig.LogLevel))
	if err != nil || cfg.LogConfig.LogLevel == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.LogConfig.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
