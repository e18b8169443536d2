package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Reivaj85/TaskManagerApplication/internal/domain"
)

// TaskDTO is the public representation of a task.
type TaskDTO struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"projectId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateTaskRequest creates a task under a project.
type CreateTaskRequest struct {
	ProjectID   uuid.UUID `json:"projectId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

// UpdateTaskRequest replaces a task's title and description.
type UpdateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// MoveTaskRequest moves a task to another project owned by the same user.
type MoveTaskRequest struct {
	ProjectID uuid.UUID `json:"projectId"`
}

func TaskToDTO(t *domain.TaskItem) TaskDTO {
	return TaskDTO{
		ID:          t.ID(),
		ProjectID:   t.ProjectID(),
		Title:       t.Title().String(),
		Description: t.Description().String(),
		IsCompleted: t.IsCompleted(),
		CreatedAt:   t.CreatedAt(),
	}
}

func TasksToDTOs(tasks []*domain.TaskItem) []TaskDTO {
	dtos := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		dtos = append(dtos, TaskToDTO(t))
	}
	return dtos
}
