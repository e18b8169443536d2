package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Reivaj85/TaskManagerApplication/internal/config"
	"github.com/Reivaj85/TaskManagerApplication/internal/middlewares"
	"github.com/Reivaj85/TaskManagerApplication/internal/services"
)

type Handlers struct {
	auth     *services.AuthenticationService
	users    *services.UserService
	projects *services.ProjectService
	tasks    *services.TaskService
	config   *config.Config
}

func New(auth *services.AuthenticationService, users *services.UserService, projects *services.ProjectService, tasks *services.TaskService, cfg *config.Config) *Handlers {
	return &Handlers{
		auth:     auth,
		users:    users,
		projects: projects,
		tasks:    tasks,
		config:   cfg,
	}
}

// failureResponse translates a business failure message into an HTTP status.
// The core carries no status codes; the category is read off the message.
func failureResponse(c *gin.Context, msg string) {
	status := http.StatusBadRequest
	code := "VALIDATION_FAILED"

	switch {
	case strings.HasSuffix(msg, "not found."):
		status = http.StatusNotFound
		code = "NOT_FOUND"
	case msg == "Access denied.":
		status = http.StatusForbidden
		code = "ACCESS_DENIED"
	case msg == "Invalid username or password.":
		status = http.StatusUnauthorized
		code = "INVALID_CREDENTIALS"
	case msg == "Username already exists.",
		msg == "Cannot delete default project.",
		msg == "Current password is required to change password.",
		msg == "Current password is incorrect.":
		code = "BUSINESS_RULE_VIOLATION"
	}

	c.JSON(status, gin.H{"error": msg, "code": code})
}

// internalError hides infrastructure failures behind a generic 500.
func internalError(c *gin.Context, err error) {
	log.Printf("Internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
		"code":  "INTERNAL_ERROR",
	})
}

func invalidRequest(c *gin.Context, err error) {
	log.Printf("Failed to bind JSON: %v", err)
	c.JSON(http.StatusBadRequest, gin.H{
		"error": "Invalid request format",
		"code":  "INVALID_REQUEST",
	})
}

// authenticatedUser pulls the caller's id set by the auth middleware.
func authenticatedUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middlewares.GetAuthenticatedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
			"code":  "AUTHENTICATION_REQUIRED",
		})
		c.Abort()
	}
	return userID, ok
}

// pathID parses a UUID path parameter or responds 400.
func pathID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + param,
			"code":  "INVALID_REQUEST",
		})
		return uuid.Nil, false
	}
	return id, true
}
