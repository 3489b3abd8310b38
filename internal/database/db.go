package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/talentbase/talentbase/internal/models"
)

// Connect opens the postgres connection and runs migrations.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	log.Info().Msg("database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the jobs and applications tables. The SET NULL
// referential action on applications.job_id is declared on the model and
// installed here.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Job{}, &models.Application{})
}
