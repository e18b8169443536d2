package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Reivaj85/TaskManagerApplication/internal/config"
	"github.com/Reivaj85/TaskManagerApplication/internal/database"
	"github.com/Reivaj85/TaskManagerApplication/internal/handlers"
	"github.com/Reivaj85/TaskManagerApplication/internal/middlewares"
	"github.com/Reivaj85/TaskManagerApplication/internal/routes"
	"github.com/Reivaj85/TaskManagerApplication/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Failed to load .env file: %v", err)
	} else {
		log.Println("Loaded .env file successfully")
	}

	// Initialize configuration
	cfg := config.Load()
	log.Printf("Starting server with config: DatabasePath=%s, TokenDuration=%v",
		cfg.DatabasePath, cfg.TokenDuration)

	// Initialize database connection
	db, err := database.Connect(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := database.InitSchema(db); err != nil {
		log.Fatal("Failed to initialize database schema:", err)
	}
	log.Println("Database connection established")

	// Wire persistence and application services
	uow := database.NewUnitOfWork(db)
	tokens := services.NewJWTTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenDuration)
	authService := services.NewAuthenticationService(uow, tokens)
	userService := services.NewUserService(uow)
	projectService := services.NewProjectService(uow)
	taskService := services.NewTaskService(uow)

	// Initialize Gin router
	switch os.Getenv("GIN_MODE") {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()

	// Add middleware
	r.Use(middlewares.CORS(cfg.AllowedOrigins))
	r.Use(middlewares.RequestID())
	r.Use(middlewares.Logger())
	r.Use(gin.Recovery())

	// Initialize handlers
	h := handlers.New(authService, userService, projectService, taskService, cfg)

	// Create auth middleware instance
	authMiddleware := middlewares.NewAuthMiddleware(cfg.JWTSecret)

	// Setup routes with auth middleware
	routes.Setup(r, h, authMiddleware)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Server shutting down...")

	// Give the server 30 seconds to finish handling requests
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ReadTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
