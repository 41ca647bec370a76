package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/translationbridge/request-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func initDBTest(t *testing.T) *gorm.DB {
	// One shared in-memory database per test; a plain :memory: DSN
	// would give every pooled connection its own empty database.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.Nil(t, err)
	require.Nil(t, db.AutoMigrate(
		&models.CountryModel{},
		&models.CityModel{},
		&models.LanguageModel{},
		&models.TranslatorModel{},
		&models.ReviewModel{},
		&models.RequestModel{},
		&models.InvoiceModel{},
	))
	return db
}

func seedLanguage(t *testing.T, db *gorm.DB, id, name string) {
	require.Nil(t, db.Create(&models.LanguageModel{ID: id, Name: name}).Error)
}
