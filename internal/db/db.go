package db

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/snnyvrz/readinglist/internal/config"
	"github.com/snnyvrz/readinglist/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var retryDelay = 2 * time.Second

// Dialector picks the gorm driver for a DATABASE_URL. Postgres URLs and
// key=value DSNs go to Postgres, with tz set as the session TimeZone unless
// the DSN already names one. Anything else is treated as a sqlite file path
// or DSN, with an optional sqlite:// prefix.
func Dialector(databaseURL, tz string) gorm.Dialector {
	dsn := strings.TrimSpace(databaseURL)

	switch {
	case strings.HasPrefix(dsn, "postgres://"),
		strings.HasPrefix(dsn, "postgresql://"),
		strings.Contains(dsn, "host="):
		return postgres.Open(withTimeZone(dsn, tz))
	case strings.HasPrefix(dsn, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(dsn, "sqlite://"))
	default:
		return sqlite.Open(dsn)
	}
}

func withTimeZone(dsn, tz string) string {
	if tz == "" || strings.Contains(dsn, "TimeZone=") {
		return dsn
	}

	if !strings.Contains(dsn, "://") {
		return dsn + " TimeZone=" + tz
	}

	u, err := url.Parse(dsn)
	if err != nil {
		return dsn
	}
	q := u.Query()
	q.Set("TimeZone", tz)
	u.RawQuery = q.Encode()
	return u.String()
}

func ConnectWithRetry(cfg *config.Config) (*gorm.DB, error) {
	attempts := cfg.DBConnectAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		var db *gorm.DB
		db, err = gorm.Open(Dialector(cfg.DatabaseURL, cfg.TZ), &gorm.Config{})
		if err == nil {
			err = ping(db)
			if err == nil {
				return db, nil
			}
		}

		log.Printf("db not ready (attempt %d/%d): %v", attempt, attempts, err)
		if attempt < attempts {
			time.Sleep(retryDelay)
		}
	}

	return nil, fmt.Errorf("could not connect to db after %d attempts: %w", attempts, err)
}

func ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Migrate creates the books table if it does not exist.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Book{}); err != nil {
		return fmt.Errorf("migrate books: %w", err)
	}
	log.Printf("books table ready")
	return nil
}
