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

// ProjectRepository is the SQLite implementation of ports.ProjectRepository.
type ProjectRepository struct {
	uow *UnitOfWork
}

const projectColumns = `id, user_id, name, created_at, is_default`

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	return r.scanProject(r.uow.conn().QueryRowContext(ctx, query, id.String()))
}

func (r *ProjectRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = ? ORDER BY created_at ASC`

	rows, err := r.uow.conn().QueryContext(ctx, query, userID.String())
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		project, err := r.scanProjectRow(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

func (r *ProjectRepository) GetDefault(ctx context.Context, userID uuid.UUID) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = ? AND is_default = 1`
	return r.scanProject(r.uow.conn().QueryRowContext(ctx, query, userID.String()))
}

func (r *ProjectRepository) Add(ctx context.Context, project *domain.Project) error {
	const query = `
		INSERT INTO projects (id, user_id, name, created_at, is_default)
		VALUES (?, ?, ?, ?, ?)`

	_, err := r.uow.conn().ExecContext(ctx, query,
		project.ID().String(),
		project.UserID().String(),
		project.Name().String(),
		project.CreatedAt().Format(time.RFC3339Nano),
		boolToInt(project.IsDefault()),
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	const query = `
		UPDATE projects
		SET name = ?, is_default = ?
		WHERE id = ?`

	_, err := r.uow.conn().ExecContext(ctx, query,
		project.Name().String(),
		boolToInt(project.IsDefault()),
		project.ID().String(),
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.uow.conn().ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) BelongsToUser(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	const query = `SELECT COUNT(1) FROM projects WHERE id = ? AND user_id = ?`

	var count int
	if err := r.uow.conn().QueryRowContext(ctx, query, projectID.String(), userID.String()).Scan(&count); err != nil {
		return false, fmt.Errorf("check project ownership: %w", err)
	}
	return count > 0, nil
}

func (r *ProjectRepository) scanProject(row *sql.Row) (*domain.Project, error) {
	var (
		id        string
		userID    string
		name      string
		createdAt string
		isDefault int
	)

	if err := row.Scan(&id, &userID, &name, &createdAt, &isDefault); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}

	return buildProject(id, userID, name, createdAt, isDefault)
}

func (r *ProjectRepository) scanProjectRow(rows *sql.Rows) (*domain.Project, error) {
	var (
		id        string
		userID    string
		name      string
		createdAt string
		isDefault int
	)

	if err := rows.Scan(&id, &userID, &name, &createdAt, &isDefault); err != nil {
		return nil, fmt.Errorf("scan project: %w", err)
	}

	return buildProject(id, userID, name, createdAt, isDefault)
}

func buildProject(id, userID, name, createdAt string, isDefault int) (*domain.Project, error) {
	projectID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse project id %q: %w", id, err)
	}
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("parse project user_id %q: %w", userID, err)
	}
	created, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse project created_at %q: %w", createdAt, err)
	}

	result := domain.LoadProject(projectID, ownerID, name, created, isDefault != 0)
	if result.IsFailure() {
		return nil, fmt.Errorf("load project %s: %s", id, result.Err())
	}
	return result.Value(), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
