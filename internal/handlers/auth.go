package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Reivaj85/TaskManagerApplication/internal/models"
)

// Register creates a new account with its default project and returns a
// session token.
func (h *Handlers) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	result, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		internalError(c, err)
		return
	}
	if result.IsFailure() {
		failureResponse(c, result.Err())
		return
	}

	c.JSON(http.StatusCreated, result.Value())
}

// Login authenticates a username/password pair.
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		internalError(c, err)
		return
	}
	if result.IsFailure() {
		failureResponse(c, result.Err())
		return
	}

	c.JSON(http.StatusOK, result.Value())
}

// Me returns a fresh session response for the authenticated user.
func (h *Handlers) Me(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	result, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		internalError(c, err)
		return
	}
	if result.IsFailure() {
		failureResponse(c, result.Err())
		return
	}

	c.JSON(http.StatusOK, result.Value())
}
