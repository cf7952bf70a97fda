package main

import (
	"fmt"
	"html"
	"log"
	"net/http"
	"time"

	"expense-tracker-be/internal/cache"
	"expense-tracker-be/internal/config"
	"expense-tracker-be/internal/controllers"
	"expense-tracker-be/internal/database"
	"expense-tracker-be/internal/middleware"
	"expense-tracker-be/internal/models"
	"expense-tracker-be/internal/repository"
	"expense-tracker-be/internal/service"
	"expense-tracker-be/internal/token"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Register custom request validators
	models.RegisterValidators()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	// Initialize token service
	tokens := token.NewService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTLHours)*time.Hour,
		cfg.IsProduction(),
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokens)
	categoryService := service.NewCategoryService(categoryRepo, transactionRepo)
	transactionService := service.NewTransactionService(transactionRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(authService, tokens)
	categoryController := controllers.NewCategoryController(categoryService)
	transactionController := controllers.NewTransactionController(transactionService)

	// Auth rate limiter: Redis-backed fixed window when available, in-memory
	// fallback otherwise (continue if Redis is unavailable)
	window := time.Duration(cfg.AuthRateLimitWindow) * time.Minute
	var authLimiter gin.HandlerFunc
	if cfg.RedisURL != "" {
		if counters, err := cache.NewRedisCounter(cfg.RedisURL); err != nil {
			log.Printf("Warning: Failed to connect to Redis (%v). Using in-memory rate limiter.", err)
		} else {
			log.Println("Connected to Redis rate limit store")
			authLimiter = middleware.NewFixedWindowLimiter(counters, cfg.AuthRateLimitMax, window, "ratelimit:auth:").LimitMiddleware()
		}
	}
	if authLimiter == nil {
		authLimiter = middleware.NewRateLimiter(
			rate.Every(window/time.Duration(cfg.AuthRateLimitMax)),
			cfg.AuthRateLimitMax,
		).LimitMiddleware()
	}

	authRequired := middleware.AuthMiddleware(tokens, userRepo)

	// Create a Gin router
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Swagat hai expense tracker me!!")
	})

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authLimiter, authController.Signup)
			auth.POST("/login", authLimiter, authController.Login)
			auth.POST("/logout", authRequired, authController.Logout)
		}

		transactions := api.Group("/transactions")
		transactions.Use(authRequired)
		{
			transactions.POST("", transactionController.Create)
			transactions.GET("", transactionController.List)
			transactions.GET("/statistics", transactionController.Statistics)
			transactions.GET("/:id", transactionController.Get)
			transactions.PUT("/:id", transactionController.Update)
			transactions.DELETE("/:id", transactionController.Delete)
		}

		categories := api.Group("/categories")
		categories.Use(authRequired)
		{
			categories.POST("", categoryController.Create)
			categories.GET("", categoryController.List)
			categories.GET("/:id", categoryController.Get)
			categories.PUT("/:id", categoryController.Update)
			categories.DELETE("/:id", categoryController.Delete)
		}
	}

	// Any unmatched path or method gets a small HTML 404 page
	notFound := func(c *gin.Context) {
		body := fmt.Sprintf("<h1>404</h1><p>Page not found: %s</p>", html.EscapeString(c.Request.URL.String()))
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(body))
	}
	router.NoRoute(notFound)
	router.NoMethod(notFound)

	log.Printf("Server running on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
