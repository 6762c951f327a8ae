package database

import (
	"github.com/lshigami/edulearn/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Models lists every table in creation order.
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Course{},
		&model.Lesson{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.QuizAnswer{},
		&model.UserProgress{},
	}
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(Models()...); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
