package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Reivaj85/TaskManagerApplication/internal/models"
)

// GetCurrentUser returns the authenticated user's profile.
func (h *Handlers) GetCurrentUser(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	result, err := h.users.GetUser(c.Request.Context(), userID)
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

// UpdateCurrentUser applies an optional password change to the authenticated
// user.
func (h *Handlers) UpdateCurrentUser(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	result, err := h.users.UpdateUser(c.Request.Context(), userID, req)
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
