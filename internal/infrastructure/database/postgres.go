package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/CodesofAkash/twitch-clone/config"
	catentities "github.com/CodesofAkash/twitch-clone/internal/domain/category/entities"
	discoveryentities "github.com/CodesofAkash/twitch-clone/internal/domain/discovery/entities"
	tagentities "github.com/CodesofAkash/twitch-clone/internal/domain/tag/entities"
)

// NewPostgresDB creates a new PostgreSQL database connection.
// TranslateError lets repositories detect unique-constraint violations
// as gorm.ErrDuplicatedKey.
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := cfg.GetDSN()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&catentities.Category{},
		&tagentities.Tag{},
		&discoveryentities.User{},
		&discoveryentities.Stream{},
		&tagentities.StreamTag{},
		&discoveryentities.Follow{},
		&discoveryentities.Block{},
	); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}

	if err := seedPredefinedCategories(db); err != nil {
		return nil, fmt.Errorf("failed to seed categories: %w", err)
	}

	return db, nil
}
