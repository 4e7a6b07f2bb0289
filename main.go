package main

import (
	"net/http"
	"os"

	"bistro-api/config"
	"bistro-api/handlers"
	"bistro-api/logger"
	"bistro-api/middleware"
	"bistro-api/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.Env)
	defer logger.Sync()

	if os.Getenv("GIN_MODE") == "" && cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	config.InitDB(cfg)
	handlers.RegisterValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	// CORS for the frontend; origin depends on deployment mode
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", cfg.CORSOrigin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Bistro Ordering API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍽️ Welcome to the Bistro Ordering API",
			"endpoints": gin.H{
				"auth":    "/api/auth",
				"menu":    "/api/menu",
				"orders":  "/api/orders",
				"reviews": "/api/reviews",
			},
		})
	})

	routes.SetupRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Route not found"})
	})

	logger.L().Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.Env),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.L().Fatal("failed to start server", zap.Error(err))
	}
}
