package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Reivaj85/TaskManagerApplication/internal/handlers"
	"github.com/Reivaj85/TaskManagerApplication/internal/middlewares"
)

func Setup(r *gin.Engine, h *handlers.Handlers, auth *middlewares.AuthMiddleware) {
	api := r.Group("/api/v1")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Authentication routes - No auth required for register/login
	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", h.Register)
		authRoutes.POST("/login", h.Login)
		authRoutes.GET("/me", auth.RequireAuth(), h.Me)
	}

	// User routes - All require auth, scoped to the caller
	users := api.Group("/users", auth.RequireAuth())
	{
		users.GET("/me", h.GetCurrentUser)
		users.PUT("/me", h.UpdateCurrentUser)
	}

	// Project routes - All require auth
	projects := api.Group("/projects", auth.RequireAuth())
	{
		projects.GET("", h.ListProjects)
		projects.POST("", h.CreateProject)
		projects.GET("/:projectId", h.GetProject)
		projects.PUT("/:projectId", h.UpdateProject)
		projects.DELETE("/:projectId", h.DeleteProject)
		projects.PUT("/:projectId/default", h.SetDefaultProject)
	}

	// Task routes - All require auth
	tasks := api.Group("/tasks", auth.RequireAuth())
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("", h.CreateTask)
		tasks.GET("/:taskId", h.GetTask)
		tasks.PUT("/:taskId", h.UpdateTask)
		tasks.DELETE("/:taskId", h.DeleteTask)
		tasks.PATCH("/:taskId/complete", h.CompleteTask)
		tasks.PATCH("/:taskId/reopen", h.ReopenTask)
		tasks.POST("/:taskId/move", h.MoveTask)
	}
}
