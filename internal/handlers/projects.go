package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Reivaj85/TaskManagerApplication/internal/models"
)

func (h *Handlers) ListProjects(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	result, err := h.projects.ListProjects(c.Request.Context(), userID)
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

func (h *Handlers) GetProject(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	result, err := h.projects.GetProject(c.Request.Context(), projectID, userID)
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

func (h *Handlers) CreateProject(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	result, err := h.projects.CreateProject(c.Request.Context(), userID, req)
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

func (h *Handlers) UpdateProject(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	result, err := h.projects.UpdateProject(c.Request.Context(), projectID, userID, req)
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

func (h *Handlers) DeleteProject(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	result, err := h.projects.DeleteProject(c.Request.Context(), projectID, userID)
	if err != nil {
		internalError(c, err)
		return
	}
	if result.IsFailure() {
		failureResponse(c, result.Err())
		return
	}

	c.Status(http.StatusNoContent)
}

// SetDefaultProject moves the default flag to this project.
func (h *Handlers) SetDefaultProject(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	result, err := h.projects.SetDefaultProject(c.Request.Context(), projectID, userID)
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
