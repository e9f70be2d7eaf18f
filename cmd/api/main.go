package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/careerforge/careerforge-backend/internal/cache"
	"github.com/careerforge/careerforge-backend/internal/database"
	"github.com/careerforge/careerforge-backend/internal/handlers"
	"github.com/careerforge/careerforge-backend/internal/letters"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY is empty. Did you load the .env file?")
	}

	// 2. Database Connection (backs the letter cache)
	db := database.Connect()

	// 3. Initialize Core Services (Dependencies)
	ctx := context.Background()
	generator, err := letters.NewGeminiGenerator(ctx, apiKey)
	if err != nil {
		log.Fatal("Failed to create Gemini client:", err)
	}
	store := cache.NewGormStore(db)
	letterService := letters.NewLetterService(store, generator)

	// 4. Initialize Handlers
	letterHandler := handlers.NewLetterHandler(letterService)

	// 5. Setup Router & CORS
	r := gin.Default()
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // For development only
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Request-ID"}
	r.Use(cors.New(config))
	r.Use(handlers.RequestIDMiddleware())

	// 6. Define Routes
	r.GET("/health", handlers.HealthCheck)
	r.POST("/generate-cover-letter", letterHandler.GenerateCoverLetter)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Server starting on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
