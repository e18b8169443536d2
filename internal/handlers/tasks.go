package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Reivaj85/TaskManagerApplication/internal/models"
)

// ListTasks returns all the caller's tasks, or the tasks of one project when
// ?projectId= is given.
func (h *Handlers) ListTasks(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	if raw := c.Query("projectId"); raw != "" {
		projectID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid projectId",
				"code":  "INVALID_REQUEST",
			})
			return
		}

		result, err := h.tasks.GetProjectTasks(c.Request.Context(), projectID, userID)
		if err != nil {
			internalError(c, err)
			return
		}
		if result.IsFailure() {
			failureResponse(c, result.Err())
			return
		}

		c.JSON(http.StatusOK, result.Value())
		return
	}

	result, err := h.tasks.GetUserTasks(c.Request.Context(), userID)
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

func (h *Handlers) GetTask(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	result, err := h.tasks.GetTask(c.Request.Context(), taskID, userID)
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

func (h *Handlers) CreateTask(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	result, err := h.tasks.CreateTask(c.Request.Context(), userID, req)
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

func (h *Handlers) UpdateTask(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	result, err := h.tasks.UpdateTask(c.Request.Context(), taskID, userID, req)
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

// CompleteTask marks a task completed.
func (h *Handlers) CompleteTask(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	result, err := h.tasks.CompleteTask(c.Request.Context(), taskID, userID)
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

// ReopenTask marks a completed task incomplete again.
func (h *Handlers) ReopenTask(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	result, err := h.tasks.ReopenTask(c.Request.Context(), taskID, userID)
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

// MoveTask reassigns a task to another project owned by the caller.
func (h *Handlers) MoveTask(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	var req models.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	result, err := h.tasks.MoveTask(c.Request.Context(), taskID, userID, req)
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

func (h *Handlers) DeleteTask(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	result, err := h.tasks.DeleteTask(c.Request.Context(), taskID, userID)
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
