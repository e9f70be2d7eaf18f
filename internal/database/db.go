package database

import (
	"log"
	"os"

	"github.com/careerforge/careerforge-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Local dev fallback, matches docker-compose defaults.
		dsn = "host=localhost user=postgres password=password dbname=careerforge port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	// Migration: creates the cache table automatically
	log.Println("Running Migrations...")
	DB.AutoMigrate(&models.CacheEntry{})
	return DB
}
