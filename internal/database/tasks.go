package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Reivaj85/TaskManagerApplication/internal/domain"
)

// TaskRepository is the SQLite implementation of ports.TaskRepository.
type TaskRepository struct {
	uow *UnitOfWork
}

const taskColumns = `id, project_id, title, description, created_at, is_completed`

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TaskItem, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return r.scanTask(r.uow.conn().QueryRowContext(ctx, query, id.String()))
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.TaskItem, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ? ORDER BY created_at DESC`
	return r.queryTasks(ctx, query, projectID.String())
}

// ListByUser joins through projects: tasks carry no direct user id.
func (r *TaskRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.TaskItem, error) {
	const query = `
		SELECT t.id, t.project_id, t.title, t.description, t.created_at, t.is_completed
		FROM tasks t
		INNER JOIN projects p ON t.project_id = p.id
		WHERE p.user_id = ?
		ORDER BY t.created_at DESC`
	return r.queryTasks(ctx, query, userID.String())
}

func (r *TaskRepository) ListCompleted(ctx context.Context, projectID uuid.UUID) ([]*domain.TaskItem, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ? AND is_completed = 1 ORDER BY created_at DESC`
	return r.queryTasks(ctx, query, projectID.String())
}

func (r *TaskRepository) ListIncomplete(ctx context.Context, projectID uuid.UUID) ([]*domain.TaskItem, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ? AND is_completed = 0 ORDER BY created_at DESC`
	return r.queryTasks(ctx, query, projectID.String())
}

func (r *TaskRepository) Add(ctx context.Context, task *domain.TaskItem) error {
	const query = `
		INSERT INTO tasks (id, project_id, title, description, created_at, is_completed)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.uow.conn().ExecContext(ctx, query,
		task.ID().String(),
		task.ProjectID().String(),
		task.Title().String(),
		task.Description().String(),
		task.CreatedAt().Format(time.RFC3339Nano),
		boolToInt(task.IsCompleted()),
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.TaskItem) error {
	const query = `
		UPDATE tasks
		SET project_id = ?, title = ?, description = ?, is_completed = ?
		WHERE id = ?`

	_, err := r.uow.conn().ExecContext(ctx, query,
		task.ProjectID().String(),
		task.Title().String(),
		task.Description().String(),
		boolToInt(task.IsCompleted()),
		task.ID().String(),
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.uow.conn().ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func (r *TaskRepository) BelongsToUser(ctx context.Context, taskID, userID uuid.UUID) (bool, error) {
	const query = `
		SELECT COUNT(1)
		FROM tasks t
		INNER JOIN projects p ON t.project_id = p.id
		WHERE t.id = ? AND p.user_id = ?`

	var count int
	if err := r.uow.conn().QueryRowContext(ctx, query, taskID.String(), userID.String()).Scan(&count); err != nil {
		return false, fmt.Errorf("check task ownership: %w", err)
	}
	return count > 0, nil
}

func (r *TaskRepository) CountByProject(ctx context.Context, projectID uuid.UUID) (int, error) {
	var count int
	err := r.uow.conn().QueryRowContext(ctx, `SELECT COUNT(1) FROM tasks WHERE project_id = ?`, projectID.String()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return count, nil
}

func (r *TaskRepository) queryTasks(ctx context.Context, query string, arg string) ([]*domain.TaskItem, error) {
	rows, err := r.uow.conn().QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.TaskItem
	for rows.Next() {
		var (
			id          string
			projectID   string
			title       string
			description string
			createdAt   string
			isCompleted int
		)
		if err := rows.Scan(&id, &projectID, &title, &description, &createdAt, &isCompleted); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}

		task, err := buildTask(id, projectID, title, description, createdAt, isCompleted)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) scanTask(row *sql.Row) (*domain.TaskItem, error) {
	var (
		id          string
		projectID   string
		title       string
		description string
		createdAt   string
		isCompleted int
	)

	if err := row.Scan(&id, &projectID, &title, &description, &createdAt, &isCompleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}

	return buildTask(id, projectID, title, description, createdAt, isCompleted)
}

func buildTask(id, projectID, title, description, createdAt string, isCompleted int) (*domain.TaskItem, error) {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse task id %q: %w", id, err)
	}
	parentID, err := uuid.Parse(projectID)
	if err != nil {
		return nil, fmt.Errorf("parse task project_id %q: %w", projectID, err)
	}
	created, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse task created_at %q: %w", createdAt, err)
	}

	result := domain.LoadTask(taskID, parentID, title, description, created, isCompleted != 0)
	if result.IsFailure() {
		return nil, fmt.Errorf("load task %s: %s", id, result.Err())
	}
	return result.Value(), nil
}
