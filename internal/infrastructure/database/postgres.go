package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/alhuzaifa/tailor-api/internal/config"
	"github.com/alhuzaifa/tailor-api/internal/domain/entity"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Billing entities
		&entity.Bill{},
		&entity.BillItem{},
		&entity.BillSequence{},

		// Worker entities
		&entity.Worker{},
		&entity.ManualItem{},

		// Alteration entities
		&entity.Alteration{},

		// Customer entities
		&entity.FavouriteCustomer{},
		&entity.MeasurementProfile{},
		&entity.Sample{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedBillSequence makes sure the bill number sequence row exists,
// starting at the configured floor so the first bill gets floor+1.
// The prefix, when set, is prepended to every allocated number.
func SeedBillSequence(db *gorm.DB, start int64, prefix string) error {
	var seq entity.BillSequence
	if err := db.First(&seq, "id = ?", 1).Error; err == nil {
		return nil
	}
	seq = entity.BillSequence{ID: 1, LastNo: start, Prefix: prefix}
	if err := db.Create(&seq).Error; err != nil {
		return fmt.Errorf("failed to seed bill sequence: %w", err)
	}
	log.Printf("Bill sequence seeded at %s%d", prefix, start)
	return nil
}
