package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/ryoishikawa/blog-api/internal/config"
	"github.com/ryoishikawa/blog-api/internal/database"
	"github.com/ryoishikawa/blog-api/internal/handlers"
	"github.com/ryoishikawa/blog-api/internal/middleware"
	"github.com/ryoishikawa/blog-api/internal/repository"
	"github.com/ryoishikawa/blog-api/internal/services"
)

func main() {
	// A missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Token service
	tokenService, err := services.NewTokenService(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.AccessTokenTTL)
	if err != nil {
		log.Fatalf("Invalid token configuration: %v", err)
	}

	// Repositories and services
	userRepo := repository.NewUserRepository(database.GetDB())
	postRepo := repository.NewPostRepository(database.GetDB())
	voteRepo := repository.NewVoteRepository(database.GetDB())

	authService := services.NewAuthService(userRepo)
	postService := services.NewPostService(postRepo)
	voteService := services.NewVoteService(postRepo, voteRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, tokenService)
	userHandler := handlers.NewUserHandler(authService)
	postHandler := handlers.NewPostHandler(postService)
	voteHandler := handlers.NewVoteHandler(voteService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Blog API is running",
		})
	})

	// Public routes
	users := r.Group("/users")
	{
		users.POST("", userHandler.Create)
		users.GET("/:id", userHandler.Get)
	}
	r.POST("/login", authHandler.Login)

	// Protected routes
	authRequired := middleware.RequireAuth(tokenService, userRepo)

	posts := r.Group("/posts")
	posts.Use(authRequired)
	{
		posts.GET("", postHandler.List)
		posts.GET("/:id", postHandler.Get)
		posts.POST("", postHandler.Create)
		posts.PUT("/:id", postHandler.Update)
		posts.DELETE("/:id", postHandler.Delete)
	}

	vote := r.Group("/vote")
	vote.Use(authRequired)
	{
		vote.POST("", voteHandler.Vote)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
