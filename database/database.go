package database

import (
	"fmt"
	"os"

	"github.com/perphorum/perphorum-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the GORM DB connection from the environment: DATABASE_URL
// wins, otherwise the discrete DB_* variables are assembled into a DSN.
func Connect() (*gorm.DB, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		return gorm.Open(postgres.Open(databaseURL), &gorm.Config{TranslateError: true})
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Perfume{},
		&models.PerfumeIngredient{},
		&models.Review{},
		&models.Comment{},
	)
}
