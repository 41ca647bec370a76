package migrate

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// RunMigrations applies the marketplace schema migrations found at
// migrationsPath to the database behind db.
func RunMigrations(db *gorm.DB, migrationsPath string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("migrations at %s: unwrap sql.DB: %w", migrationsPath, err)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migrations at %s: init driver: %w", migrationsPath, err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrations at %s: %w", migrationsPath, err)
	}

	switch err := m.Up(); {
	case err == nil:
		log.Info().Str("path", migrationsPath).Msg("migrations applied")
	case errors.Is(err, migrate.ErrNoChange):
		log.Info().Str("path", migrationsPath).Msg("schema up to date")
	default:
		return fmt.Errorf("migrations at %s: %w", migrationsPath, err)
	}
	return nil
}
