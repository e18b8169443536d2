package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultProjectName is the name given to the project auto-created at
// registration.
const DefaultProjectName = "Personal"

// Project is the aggregate root grouping tasks for a single owner. The owner
// is immutable after creation.
type Project struct {
	id        uuid.UUID
	userID    uuid.UUID
	name      ProjectName
	createdAt time.Time
	isDefault bool
}

// NewProject creates a project owned by userID with a validated name.
func NewProject(userID uuid.UUID, name string, isDefault bool) Result[*Project] {
	if userID == uuid.Nil {
		return Fail[*Project]("User ID cannot be empty.")
	}

	nameResult := NewProjectName(name)
	if nameResult.IsFailure() {
		return FailFrom[*Project](nameResult)
	}

	return Ok(&Project{
		id:        uuid.New(),
		userID:    userID,
		name:      nameResult.Value(),
		createdAt: time.Now().UTC(),
		isDefault: isDefault,
	})
}

// NewDefaultProject creates the per-user default project created at
// registration time.
func NewDefaultProject(userID uuid.UUID) Result[*Project] {
	return NewProject(userID, DefaultProjectName, true)
}

// LoadProject reconstructs a persisted project, re-checking structural
// invariants.
func LoadProject(id, userID uuid.UUID, name string, createdAt time.Time, isDefault bool) Result[*Project] {
	if id == uuid.Nil {
		return Fail[*Project]("Project ID cannot be empty.")
	}
	if userID == uuid.Nil {
		return Fail[*Project]("User ID cannot be empty.")
	}

	nameResult := NewProjectName(name)
	if nameResult.IsFailure() {
		return FailFrom[*Project](nameResult)
	}

	return Ok(&Project{id: id, userID: userID, name: nameResult.Value(), createdAt: createdAt, isDefault: isDefault})
}

func (p *Project) ID() uuid.UUID        { return p.id }
func (p *Project) UserID() uuid.UUID    { return p.userID }
func (p *Project) Name() ProjectName    { return p.name }
func (p *Project) CreatedAt() time.Time { return p.createdAt }
func (p *Project) IsDefault() bool      { return p.isDefault }

// Rename validates and replaces the name. Failure leaves the name unchanged.
func (p *Project) Rename(newName string) Result[Unit] {
	nameResult := NewProjectName(newName)
	if nameResult.IsFailure() {
		return FailFrom[Unit](nameResult)
	}

	p.name = nameResult.Value()
	return Done()
}

// MarkAsDefault flips the default flag on. Uniqueness of the default project
// per user is the service layer's responsibility, not checked here.
func (p *Project) MarkAsDefault() {
	p.isDefault = true
}

// UnmarkAsDefault flips the default flag off.
func (p *Project) UnmarkAsDefault() {
	p.isDefault = false
}
