package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Reivaj85/TaskManagerApplication/internal/domain"
)

// ProjectDTO is the public representation of a project.
type ProjectDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
	TaskCount int       `json:"taskCount"`
}

// CreateProjectRequest creates a new (non-default) project.
type CreateProjectRequest struct {
	Name string `json:"name"`
}

// UpdateProjectRequest renames a project.
type UpdateProjectRequest struct {
	Name string `json:"name"`
}

func ProjectToDTO(p *domain.Project, taskCount int) ProjectDTO {
	return ProjectDTO{
		ID:        p.ID(),
		Name:      p.Name().String(),
		IsDefault: p.IsDefault(),
		CreatedAt: p.CreatedAt(),
		TaskCount: taskCount,
	}
}
