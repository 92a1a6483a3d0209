package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"gorm.io/gorm"
)

var DB *sqlx.DB

// InitPostgres opens the sqlx handle used for aggregate queries and health checks.
func InitPostgres(dsn string) (*sqlx.DB, error) {
	var err error

	for i := 0; i < 10; i++ {
		DB, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			return DB, nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return nil, fmt.Errorf("failed to connect to postgres (sqlx): %w", err)
}

// SqlxFromGorm shares the connection pool of an open GORM handle. driverName
// selects the bindvar style ("postgres" or "sqlite3").
func SqlxFromGorm(db *gorm.DB, driverName string) (*sqlx.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}
	return sqlx.NewDb(sqlDB, driverName), nil
}

// Ping checks the database within timeout.
func Ping(db *sqlx.DB, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return db.PingContext(ctx)
}
