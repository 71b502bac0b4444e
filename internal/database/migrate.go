package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/Jobor-Marho/django-receipe-app-api/internal/models"
)

// RunMigrations applies the schema for all domain entities
func RunMigrations(db *gorm.DB) error {
	log.Printf("Running schema migrations (%s)", db.Dialector.Name())
	return db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
	)
}
