package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/Reivaj85/TaskManagerApplication/internal/domain"
)

// Lookups return (nil, nil) when the entity does not exist; a non-nil error
// always means an infrastructure problem, never a business outcome.

// UserRepository persists User aggregates.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Add(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Exists(ctx context.Context, username string) (bool, error)
}

// ProjectRepository persists Project aggregates.
type ProjectRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error)
	GetDefault(ctx context.Context, userID uuid.UUID) (*domain.Project, error)
	Add(ctx context.Context, project *domain.Project) error
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	BelongsToUser(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
}

// TaskRepository persists TaskItem aggregates.
type TaskRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TaskItem, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.TaskItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.TaskItem, error)
	ListCompleted(ctx context.Context, projectID uuid.UUID) ([]*domain.TaskItem, error)
	ListIncomplete(ctx context.Context, projectID uuid.UUID) ([]*domain.TaskItem, error)
	Add(ctx context.Context, task *domain.TaskItem) error
	Update(ctx context.Context, task *domain.TaskItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	BelongsToUser(ctx context.Context, taskID, userID uuid.UUID) (bool, error)
	CountByProject(ctx context.Context, projectID uuid.UUID) (int, error)
}
