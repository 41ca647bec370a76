package postgres

import (
	"log"

	"github.com/translationbridge/request-service/internal/config"
	"github.com/translationbridge/request-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.MarketplaceConfig) *gorm.DB {
	dsn := cfg.MarketplaceDB.Dsn
	// TranslateError maps unique violations to gorm.ErrDuplicatedKey,
	// which the repositories rely on for duplicate invoice detection.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.CountryModel{},
		&models.CityModel{},
		&models.LanguageModel{},
		&models.TranslatorModel{},
		&models.ReviewModel{},
		&models.RequestModel{},
		&models.InvoiceModel{},
	)

	return db
}
