package database

import (
	"fmt"

	"github.com/h2o-salon/salon-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB opens the connection and runs migrations. TranslateError is
// enabled so a unique-index violation surfaces as gorm.ErrDuplicatedKey,
// which the booking service maps to the slot-conflict outcome.
func NewPostgresDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// AutoMigrate creates idx_booking_slot (barber, date, time) — the
	// authoritative double-booking guard.
	if err := db.AutoMigrate(&models.Booking{}); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return db, nil
}
