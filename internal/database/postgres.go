package database

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Zero-Sign/swift-hire/internal/models"
)

// Open connects to PostgreSQL and creates any missing tables.
func Open(uri string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(uri), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pooling settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates all tables if absent; there is no migration framework
// beyond this.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Candidate{},
		&models.Interviewer{},
		&models.JobPost{},
		&models.SavedJob{},
		&models.JobApplication{},
		&models.Note{},
		&models.Feedback{},
	)
}
