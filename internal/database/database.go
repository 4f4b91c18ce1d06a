package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"entidad/internal/models"
)

const (
	maxOpenConns    = 25
	maxIdleConns    = 25
	connMaxLifetime = 5 * time.Minute
)

// Connect opens a PostgreSQL-backed GORM handle with a bounded connection
// pool. The initial ping is disabled so the server can start before the
// database is reachable; /health reports the actual state per request.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	return db, nil
}

// Migrate ensures the productos table exists. It is idempotent and never
// drops or rewrites existing data, so it is safe to invoke repeatedly.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Producto{}); err != nil {
		return fmt.Errorf("failed to migrate productos table: %w", err)
	}
	return nil
}
