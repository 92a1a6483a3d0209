// Package testdb opens migrated in-memory SQLite databases for tests.
package testdb

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	pitwalldb "redline-garage/pitwall/internal/db"
	gormModels "redline-garage/pitwall/internal/models/gorm"
)

// New returns a GORM handle on a fresh, migrated in-memory database. Each
// call gets its own database; connections within it share the cache.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(gormModels.AllModels()...); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// Sqlx wraps the same connection pool for sqlx repositories.
func Sqlx(t testing.TB, db *gorm.DB) *sqlx.DB {
	t.Helper()

	sqlxDB, err := pitwalldb.SqlxFromGorm(db, "sqlite3")
	if err != nil {
		t.Fatalf("Failed to wrap test database: %v", err)
	}
	return sqlxDB
}

// SeedUser inserts a user row and returns its id.
func SeedUser(t testing.TB, db *gorm.DB, id string) string {
	t.Helper()

	name := "user " + id
	if err := db.Create(&gormModels.User{ID: id, Name: &name}).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return id
}

// SeedVehicle inserts a vehicle owned by ownerID.
func SeedVehicle(t testing.TB, db *gorm.DB, ownerID string, mileage int) *gormModels.Vehicle {
	t.Helper()

	v := &gormModels.Vehicle{
		Year:           2004,
		Make:           "Subaru",
		Model:          "Impreza WRX STI",
		CurrentMileage: mileage,
		OwnerID:        ownerID,
	}
	if err := db.Omit("Owner").Create(v).Error; err != nil {
		t.Fatalf("Failed to seed vehicle: %v", err)
	}
	return v
}
