package routes

import (
	"bistro-api/handlers"
	"bistro-api/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func SetupRoutes(r *gin.Engine) {
	// ── Auth ───────────────────────────────────────────────────────
	auth := r.Group("/api/auth")
	auth.Use(middleware.RateLimit(rate.Limit(10), 20))
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
		auth.POST("/admin-login", handlers.AdminLogin)
		auth.POST("/logout", middleware.AuthRequired(), handlers.Logout)
		auth.GET("/me", middleware.AuthRequired(), handlers.Me)
	}

	// ── Menu ───────────────────────────────────────────────────────
	menu := r.Group("/api/menu")
	{
		menu.GET("", handlers.ListMenu)
		menu.GET("/type/:type", handlers.GetMenuByType)
		menu.GET("/:id", handlers.GetMenuItem)

		menu.POST("", middleware.AuthRequired(), middleware.AdminRequired(), handlers.CreateMenuItem)
		menu.PUT("/:id", middleware.AuthRequired(), middleware.AdminRequired(), handlers.UpdateMenuItem)
		menu.DELETE("/:id", middleware.AuthRequired(), middleware.AdminRequired(), handlers.DeleteMenuItem)
		menu.PATCH("/:id/availability", middleware.AuthRequired(), middleware.AdminRequired(), handlers.ToggleAvailability)
	}

	// ── Orders ─────────────────────────────────────────────────────
	orders := r.Group("/api/orders")
	orders.Use(middleware.AuthRequired())
	{
		orders.POST("", handlers.CreateOrder)
		orders.GET("/my-orders", handlers.GetMyOrders)
		orders.GET("", middleware.AdminRequired(), handlers.GetAllOrders)
		orders.GET("/:id", handlers.GetOrder)
		orders.PATCH("/:id/status", middleware.AdminRequired(), handlers.UpdateOrderStatus)
		orders.PATCH("/:id/cancel", handlers.CancelOrder)
	}

	// ── Reviews ────────────────────────────────────────────────────
	reviews := r.Group("/api/reviews")
	{
		reviews.POST("", middleware.AuthRequired(), handlers.CreateReview)
		reviews.GET("", middleware.OptionalAuth(), handlers.ListReviews)
		reviews.GET("/approved", handlers.GetApprovedReviews)
		reviews.PATCH("/:id/approve", middleware.AuthRequired(), middleware.AdminRequired(), handlers.ApproveReview)
		reviews.DELETE("/:id", middleware.AuthRequired(), middleware.AdminRequired(), handlers.DeleteReview)
	}

	// Lifecycle documentation (great for docs/Postman)
	r.GET("/api/state-machine", handlers.StateMachineInfo)
}
