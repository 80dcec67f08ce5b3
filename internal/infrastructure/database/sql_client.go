package database

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrMissingDSN = errors.New("missing DATABASE_DSN")

// ConnectSQL opens a GORM connection for the given driver ("postgres" or
// "mysql") and migrates the supplied models.
func ConnectSQL(driver, dsn string, models ...interface{}) (*gorm.DB, error) {
	if dsn == "" {
		return nil, ErrMissingDSN
	}

	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}
	log.Info().Str("driver", driver).Int("models", len(models)).Msg("[database][sql] connected and migrated")
	return db, nil
}
