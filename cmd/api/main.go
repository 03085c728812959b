package main

import (
	"log"

	"github.com/gin-gonic/gin"

	_ "github.com/granttrack/granttrack/docs"
	"github.com/granttrack/granttrack/internal/api/middleware"
	"github.com/granttrack/granttrack/internal/api/routes"
	"github.com/granttrack/granttrack/internal/config"
	"github.com/granttrack/granttrack/internal/config/db"
	"github.com/granttrack/granttrack/internal/storage"
)

// @title GrantTrack API
// @version 1.0
// @description Grant expense tracking with payment reconciliation.
// @BasePath /
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and migrate schemas
	db.Init()

	// Initialize object storage for ticket documents
	storage.Init()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
