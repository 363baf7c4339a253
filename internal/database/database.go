package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hy-wedding/rsvp-api/internal/config"
	"github.com/hy-wedding/rsvp-api/internal/models"
)

func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("failed to connect to database")
	}

	if err := db.AutoMigrate(&models.RSVP{}); err != nil {
		log.Fatal().Err(err).Msg("failed to auto migrate")
	}

	return db
}
