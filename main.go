package main

import (
	"net/http"
	"os"

	"restaurant-management-api/config"
	"restaurant-management-api/logger"
	"restaurant-management-api/middleware"
	"restaurant-management-api/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" && cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database (migrates and seeds sample data when empty)
	config.InitDB(cfg.DBPath)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Per-IP throttling, strict tier on auth endpoints
	r.Use(middleware.RateLimit())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant Management API",
			"version": "1.0.0",
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	logger.L().Info("server running", zap.String("addr", "http://localhost:"+cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.L().Fatal("failed to start server", zap.Error(err))
	}
}
