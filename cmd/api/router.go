package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"events-backend/internal/shared/middleware"
	"events-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupCategoryRoutes(v1, c)
		setupEventRoutes(v1, c)
		setupCartRoutes(v1, c)
		setupBookingRoutes(v1, c)
		setupPaymentRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	users.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		users.GET("/me", c.UserHandler.GetProfile)
	}
}

// ========================================
// CATEGORY ROUTES
// ========================================
func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.GetAll)
		categories.POST("", middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware(), c.CategoryHandler.Create)
		categories.DELETE("/:id", middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware(), c.CategoryHandler.Delete)
	}
}

// ========================================
// EVENT ROUTES
// ========================================
func setupEventRoutes(v1 *gin.RouterGroup, c *container.Container) {
	events := v1.Group("/events")
	{
		events.GET("", c.EventHandler.List)
		events.GET("/:id", c.EventHandler.Get)
		events.POST("", middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware(), c.EventHandler.Create)
		events.DELETE("/:id", middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware(), c.EventHandler.Delete)
	}
}

// ========================================
// CART ROUTES
// ========================================
func setupCartRoutes(v1 *gin.RouterGroup, c *container.Container) {
	cart := v1.Group("/cart")
	cart.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		cart.GET("", c.CartHandler.GetCart)
		cart.GET("/summary", c.CartHandler.GetSummary)
		cart.POST("/items", c.CartHandler.AddLine)
		cart.PUT("/items", c.CartHandler.UpdateQuantity)
		cart.DELETE("/items", c.CartHandler.RemoveLine)
		cart.POST("/validate", c.CartHandler.ValidateCart)
		cart.DELETE("", c.CartHandler.ClearCart)
	}
}

// ========================================
// BOOKING ROUTES
// ========================================
func setupBookingRoutes(v1 *gin.RouterGroup, c *container.Container) {
	bookings := v1.Group("/bookings")
	bookings.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		bookings.POST("", c.BookingHandler.CreateBooking)
		bookings.GET("", c.BookingHandler.ListBookings)
		bookings.PUT("/:id", middleware.AdminMiddleware(), c.BookingHandler.SetStatus)
	}
}

// ========================================
// PAYMENT ROUTES
// ========================================
func setupPaymentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	// The gateway redirect calls confirm without a session; both routes stay
	// outside the auth group, matching the storefront's checkout flow.
	v1.POST("/payment-intents/:bookingId", c.PaymentHandler.CreateIntent)
	v1.PUT("/confirm/:intentRef", c.PaymentHandler.ConfirmByIntent)
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "ok"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "unreachable"
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "unreachable"
		}

		status := http.StatusOK
		if dbStatus != "ok" {
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status":      "up",
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
			"database":    dbStatus,
			"cache":       cacheStatus,
		})
	}
}
