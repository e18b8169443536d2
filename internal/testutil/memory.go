// Package testutil provides a map-backed unit of work for tests that need a
// ports.UnitOfWork without a database.
package testutil

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Reivaj85/TaskManagerApplication/internal/domain"
	"github.com/Reivaj85/TaskManagerApplication/internal/ports"
)

// MemoryUnitOfWork implements ports.UnitOfWork over plain maps. BeginTx
// deep-copies the maps and returns the same instance, so Rollback restores
// both map membership and entity state as of BeginTx, including in-place
// mutations made through entities loaded earlier. Not safe for concurrent use.
type MemoryUnitOfWork struct {
	UsersByID    map[uuid.UUID]*domain.User
	ProjectsByID map[uuid.UUID]*domain.Project
	TasksByID    map[uuid.UUID]*domain.TaskItem

	// FailProjectAdd forces the next project insert to error, for exercising
	// rollback paths.
	FailProjectAdd error

	snapshot *memorySnapshot
}

type memorySnapshot struct {
	users    map[uuid.UUID]*domain.User
	projects map[uuid.UUID]*domain.Project
	tasks    map[uuid.UUID]*domain.TaskItem
}

func NewMemoryUnitOfWork() *MemoryUnitOfWork {
	return &MemoryUnitOfWork{
		UsersByID:    make(map[uuid.UUID]*domain.User),
		ProjectsByID: make(map[uuid.UUID]*domain.Project),
		TasksByID:    make(map[uuid.UUID]*domain.TaskItem),
	}
}

func (m *MemoryUnitOfWork) Users() ports.UserRepository       { return &memoryUserRepo{m} }
func (m *MemoryUnitOfWork) Projects() ports.ProjectRepository { return &memoryProjectRepo{m} }
func (m *MemoryUnitOfWork) Tasks() ports.TaskRepository       { return &memoryTaskRepo{m} }

func (m *MemoryUnitOfWork) SaveChanges(ctx context.Context) error { return ctx.Err() }

func (m *MemoryUnitOfWork) BeginTx(ctx context.Context) (ports.UnitOfWork, error) {
	m.snapshot = &memorySnapshot{
		users:    cloneUsers(m.UsersByID),
		projects: cloneProjects(m.ProjectsByID),
		tasks:    cloneTasks(m.TasksByID),
	}
	return m, nil
}

func (m *MemoryUnitOfWork) Commit(ctx context.Context) error {
	m.snapshot = nil
	return nil
}

func (m *MemoryUnitOfWork) Rollback(ctx context.Context) error {
	if m.snapshot != nil {
		m.UsersByID = m.snapshot.users
		m.ProjectsByID = m.snapshot.projects
		m.TasksByID = m.snapshot.tasks
	}
	m.snapshot = nil
	return nil
}

// The clones go through the domain Load* factories so snapshot entities are
// independent of the originals that services keep mutating.

func cloneUsers(src map[uuid.UUID]*domain.User) map[uuid.UUID]*domain.User {
	dst := make(map[uuid.UUID]*domain.User, len(src))
	for k, u := range src {
		dst[k] = domain.LoadUser(u.ID(), u.Username(), u.PasswordHash(), u.CreatedAt()).Value()
	}
	return dst
}

func cloneProjects(src map[uuid.UUID]*domain.Project) map[uuid.UUID]*domain.Project {
	dst := make(map[uuid.UUID]*domain.Project, len(src))
	for k, p := range src {
		dst[k] = domain.LoadProject(p.ID(), p.UserID(), p.Name().String(), p.CreatedAt(), p.IsDefault()).Value()
	}
	return dst
}

func cloneTasks(src map[uuid.UUID]*domain.TaskItem) map[uuid.UUID]*domain.TaskItem {
	dst := make(map[uuid.UUID]*domain.TaskItem, len(src))
	for k, t := range src {
		dst[k] = domain.LoadTask(t.ID(), t.ProjectID(), t.Title().String(), t.Description().String(), t.CreatedAt(), t.IsCompleted()).Value()
	}
	return dst
}

type memoryUserRepo struct{ m *MemoryUnitOfWork }

func (r *memoryUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	return r.m.UsersByID[id], nil
}

func (r *memoryUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.m.UsersByID {
		if strings.EqualFold(u.Username().String(), username) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) Add(_ context.Context, user *domain.User) error {
	r.m.UsersByID[user.ID()] = user
	return nil
}

func (r *memoryUserRepo) Update(_ context.Context, user *domain.User) error {
	r.m.UsersByID[user.ID()] = user
	return nil
}

func (r *memoryUserRepo) Exists(ctx context.Context, username string) (bool, error) {
	user, err := r.GetByUsername(ctx, username)
	return user != nil, err
}

type memoryProjectRepo struct{ m *MemoryUnitOfWork }

func (r *memoryProjectRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Project, error) {
	return r.m.ProjectsByID[id], nil
}

func (r *memoryProjectRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	var out []*domain.Project
	for _, p := range r.m.ProjectsByID {
		if p.UserID() == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memoryProjectRepo) GetDefault(_ context.Context, userID uuid.UUID) (*domain.Project, error) {
	for _, p := range r.m.ProjectsByID {
		if p.UserID() == userID && p.IsDefault() {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memoryProjectRepo) Add(_ context.Context, project *domain.Project) error {
	if err := r.m.FailProjectAdd; err != nil {
		r.m.FailProjectAdd = nil
		return err
	}
	r.m.ProjectsByID[project.ID()] = project
	return nil
}

func (r *memoryProjectRepo) Update(_ context.Context, project *domain.Project) error {
	r.m.ProjectsByID[project.ID()] = project
	return nil
}

func (r *memoryProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.m.ProjectsByID, id)
	return nil
}

func (r *memoryProjectRepo) BelongsToUser(_ context.Context, projectID, userID uuid.UUID) (bool, error) {
	p := r.m.ProjectsByID[projectID]
	return p != nil && p.UserID() == userID, nil
}

type memoryTaskRepo struct{ m *MemoryUnitOfWork }

func (r *memoryTaskRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.TaskItem, error) {
	return r.m.TasksByID[id], nil
}

func (r *memoryTaskRepo) ListByProject(_ context.Context, projectID uuid.UUID) ([]*domain.TaskItem, error) {
	var out []*domain.TaskItem
	for _, t := range r.m.TasksByID {
		if t.ProjectID() == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memoryTaskRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.TaskItem, error) {
	var out []*domain.TaskItem
	for _, t := range r.m.TasksByID {
		p := r.m.ProjectsByID[t.ProjectID()]
		if p != nil && p.UserID() == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memoryTaskRepo) ListCompleted(_ context.Context, projectID uuid.UUID) ([]*domain.TaskItem, error) {
	return r.filter(projectID, true), nil
}

func (r *memoryTaskRepo) ListIncomplete(_ context.Context, projectID uuid.UUID) ([]*domain.TaskItem, error) {
	return r.filter(projectID, false), nil
}

func (r *memoryTaskRepo) filter(projectID uuid.UUID, completed bool) []*domain.TaskItem {
	var out []*domain.TaskItem
	for _, t := range r.m.TasksByID {
		if t.ProjectID() == projectID && t.IsCompleted() == completed {
			out = append(out, t)
		}
	}
	return out
}

func (r *memoryTaskRepo) Add(_ context.Context, task *domain.TaskItem) error {
	r.m.TasksByID[task.ID()] = task
	return nil
}

func (r *memoryTaskRepo) Update(_ context.Context, task *domain.TaskItem) error {
	r.m.TasksByID[task.ID()] = task
	return nil
}

func (r *memoryTaskRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.m.TasksByID, id)
	return nil
}

func (r *memoryTaskRepo) BelongsToUser(_ context.Context, taskID, userID uuid.UUID) (bool, error) {
	t := r.m.TasksByID[taskID]
	if t == nil {
		return false, nil
	}
	p := r.m.ProjectsByID[t.ProjectID()]
	return p != nil && p.UserID() == userID, nil
}

func (r *memoryTaskRepo) CountByProject(_ context.Context, projectID uuid.UUID) (int, error) {
	count := 0
	for _, t := range r.m.TasksByID {
		if t.ProjectID() == projectID {
			count++
		}
	}
	return count, nil
}
