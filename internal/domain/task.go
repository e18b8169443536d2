package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskItem belongs to a project and carries no direct user id: ownership is
// always resolved through the parent project.
type TaskItem struct {
	id          uuid.UUID
	projectID   uuid.UUID
	title       TaskTitle
	description TaskDescription
	createdAt   time.Time
	isCompleted bool
}

// NewTask creates a task under projectID with a validated title and optional
// description.
func NewTask(projectID uuid.UUID, title, description string) Result[*TaskItem] {
	if projectID == uuid.Nil {
		return Fail[*TaskItem]("Project ID cannot be empty.")
	}

	titleResult := NewTaskTitle(title)
	if titleResult.IsFailure() {
		return FailFrom[*TaskItem](titleResult)
	}

	descriptionResult := NewTaskDescription(description)
	if descriptionResult.IsFailure() {
		return FailFrom[*TaskItem](descriptionResult)
	}

	return Ok(&TaskItem{
		id:          uuid.New(),
		projectID:   projectID,
		title:       titleResult.Value(),
		description: descriptionResult.Value(),
		createdAt:   time.Now().UTC(),
		isCompleted: false,
	})
}

// LoadTask reconstructs a persisted task, re-checking structural invariants.
func LoadTask(id, projectID uuid.UUID, title, description string, createdAt time.Time, isCompleted bool) Result[*TaskItem] {
	if id == uuid.Nil {
		return Fail[*TaskItem]("Task ID cannot be empty.")
	}
	if projectID == uuid.Nil {
		return Fail[*TaskItem]("Project ID cannot be empty.")
	}

	titleResult := NewTaskTitle(title)
	if titleResult.IsFailure() {
		return FailFrom[*TaskItem](titleResult)
	}

	descriptionResult := NewTaskDescription(description)
	if descriptionResult.IsFailure() {
		return FailFrom[*TaskItem](descriptionResult)
	}

	return Ok(&TaskItem{
		id:          id,
		projectID:   projectID,
		title:       titleResult.Value(),
		description: descriptionResult.Value(),
		createdAt:   createdAt,
		isCompleted: isCompleted,
	})
}

func (t *TaskItem) ID() uuid.UUID                { return t.id }
func (t *TaskItem) ProjectID() uuid.UUID         { return t.projectID }
func (t *TaskItem) Title() TaskTitle             { return t.title }
func (t *TaskItem) Description() TaskDescription { return t.description }
func (t *TaskItem) CreatedAt() time.Time         { return t.createdAt }
func (t *TaskItem) IsCompleted() bool            { return t.isCompleted }

// Update validates both fields before applying either; on any failure neither
// field changes.
func (t *TaskItem) Update(title, description string) Result[Unit] {
	titleResult := NewTaskTitle(title)
	if titleResult.IsFailure() {
		return FailFrom[Unit](titleResult)
	}

	descriptionResult := NewTaskDescription(description)
	if descriptionResult.IsFailure() {
		return FailFrom[Unit](descriptionResult)
	}

	t.title = titleResult.Value()
	t.description = descriptionResult.Value()
	return Done()
}

// MarkAsCompleted sets the completion flag. Completion is not a guarded state
// machine; the flip is unconditional.
func (t *TaskItem) MarkAsCompleted() {
	t.isCompleted = true
}

// MarkAsIncomplete clears the completion flag.
func (t *TaskItem) MarkAsIncomplete() {
	t.isCompleted = false
}

// ToggleCompletion inverts the completion flag.
func (t *TaskItem) ToggleCompletion() {
	t.isCompleted = !t.isCompleted
}

// MoveToProject reassigns the task to another project. Existence and ownership
// of the destination are the caller's responsibility.
func (t *TaskItem) MoveToProject(newProjectID uuid.UUID) Result[Unit] {
	if newProjectID == uuid.Nil {
		return Fail[Unit]("Project ID cannot be empty.")
	}

	t.projectID = newProjectID
	return Done()
}
