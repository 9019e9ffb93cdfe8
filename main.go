package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/south-indian-kitchen/backend/config"
	"github.com/south-indian-kitchen/backend/database"
	"github.com/south-indian-kitchen/backend/router"
	"github.com/south-indian-kitchen/backend/storage"
	"github.com/south-indian-kitchen/backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open database: %v", err)
	}

	if err := database.Seed(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed mock data: %v", err)
	}
	utils.InfoLogger.Println("Mock data seeded")

	store := storage.NewCartStore()

	r := router.SetupRouter(db, store)

	port := config.Getenv("PORT", "8080")
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
