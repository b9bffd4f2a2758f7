package database

import (
	"database/sql"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mager/broca/config"
	"go.uber.org/zap"
)

// ProvideDatabase provides a database client. Postgres URLs use lib/pq,
// anything else is treated as a path to a SQLite file.
func ProvideDatabase(logger *zap.SugaredLogger, cfg config.Config) (*sql.DB, error) {
	return Open(logger, cfg.DatabaseURL)
}

// Open dials the database behind a URL or file path.
func Open(logger *zap.SugaredLogger, url string) (*sql.DB, error) {
	driver, dsn := driverFor(url)

	db, err := sql.Open(driver, dsn)
	if err != nil {
		logger.Errorw("Failed to open database connection", "error", err)
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		logger.Errorw("Failed to ping database", "error", err)
		return nil, err
	}

	return db, nil
}

func driverFor(url string) (driver, dsn string) {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return "postgres", url
	}
	// The original tooling passed sqlite URLs in the sqlite:///path form.
	if rest, ok := strings.CutPrefix(url, "sqlite:///"); ok {
		return "sqlite3", rest
	}
	return "sqlite3", url
}

var Options = ProvideDatabase
