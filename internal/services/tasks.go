package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Reivaj85/TaskManagerApplication/internal/domain"
	"github.com/Reivaj85/TaskManagerApplication/internal/models"
	"github.com/Reivaj85/TaskManagerApplication/internal/ports"
)

// TaskService handles task CRUD and completion state. Tasks carry no direct
// user id, so every authorization check resolves the parent project first.
type TaskService struct {
	uow ports.UnitOfWork
}

func NewTaskService(uow ports.UnitOfWork) *TaskService {
	return &TaskService{uow: uow}
}

// loadOwnedTask fetches a task and authorizes against the owner of its parent
// project.
func (s *TaskService) loadOwnedTask(ctx context.Context, taskID, userID uuid.UUID) (domain.Result[*domain.TaskItem], error) {
	task, err := s.uow.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return domain.Result[*domain.TaskItem]{}, fmt.Errorf("load task: %w", err)
	}
	if task == nil {
		return domain.Fail[*domain.TaskItem]("Task not found."), nil
	}

	project, err := s.uow.Projects().GetByID(ctx, task.ProjectID())
	if err != nil {
		return domain.Result[*domain.TaskItem]{}, fmt.Errorf("load parent project: %w", err)
	}
	if project == nil || project.UserID() != userID {
		return domain.Fail[*domain.TaskItem]("Access denied."), nil
	}

	return domain.Ok(task), nil
}

// loadOwnedProject authorizes a project reference before tasks are created in
// or moved into it.
func (s *TaskService) loadOwnedProject(ctx context.Context, projectID, userID uuid.UUID) (domain.Result[*domain.Project], error) {
	project, err := s.uow.Projects().GetByID(ctx, projectID)
	if err != nil {
		return domain.Result[*domain.Project]{}, fmt.Errorf("load project: %w", err)
	}
	if project == nil {
		return domain.Fail[*domain.Project]("Project not found."), nil
	}
	if project.UserID() != userID {
		return domain.Fail[*domain.Project]("Access denied."), nil
	}

	return domain.Ok(project), nil
}

func (s *TaskService) GetProjectTasks(ctx context.Context, projectID, userID uuid.UUID) (domain.Result[[]models.TaskDTO], error) {
	owned, err := s.loadOwnedProject(ctx, projectID, userID)
	if err != nil {
		return domain.Result[[]models.TaskDTO]{}, err
	}
	if owned.IsFailure() {
		return domain.FailFrom[[]models.TaskDTO](owned), nil
	}

	tasks, err := s.uow.Tasks().ListByProject(ctx, projectID)
	if err != nil {
		return domain.Result[[]models.TaskDTO]{}, fmt.Errorf("list tasks: %w", err)
	}

	return domain.Ok(models.TasksToDTOs(tasks)), nil
}

func (s *TaskService) GetUserTasks(ctx context.Context, userID uuid.UUID) (domain.Result[[]models.TaskDTO], error) {
	tasks, err := s.uow.Tasks().ListByUser(ctx, userID)
	if err != nil {
		return domain.Result[[]models.TaskDTO]{}, fmt.Errorf("list user tasks: %w", err)
	}

	return domain.Ok(models.TasksToDTOs(tasks)), nil
}

func (s *TaskService) GetTask(ctx context.Context, taskID, userID uuid.UUID) (domain.Result[models.TaskDTO], error) {
	owned, err := s.loadOwnedTask(ctx, taskID, userID)
	if err != nil {
		return domain.Result[models.TaskDTO]{}, err
	}
	if owned.IsFailure() {
		return domain.FailFrom[models.TaskDTO](owned), nil
	}

	return domain.Ok(models.TaskToDTO(owned.Value())), nil
}

func (s *TaskService) CreateTask(ctx context.Context, userID uuid.UUID, req models.CreateTaskRequest) (domain.Result[models.TaskDTO], error) {
	owned, err := s.loadOwnedProject(ctx, req.ProjectID, userID)
	if err != nil {
		return domain.Result[models.TaskDTO]{}, err
	}
	if owned.IsFailure() {
		return domain.FailFrom[models.TaskDTO](owned), nil
	}

	taskResult := domain.NewTask(req.ProjectID, req.Title, req.Description)
	if taskResult.IsFailure() {
		return domain.FailFrom[models.TaskDTO](taskResult), nil
	}

	task := taskResult.Value()
	if err := s.uow.Tasks().Add(ctx, task); err != nil {
		return domain.Result[models.TaskDTO]{}, fmt.Errorf("add task: %w", err)
	}
	if err := s.uow.SaveChanges(ctx); err != nil {
		return domain.Result[models.TaskDTO]{}, fmt.Errorf("save changes: %w", err)
	}

	return domain.Ok(models.TaskToDTO(task)), nil
}

func (s *TaskService) UpdateTask(ctx context.Context, taskID, userID uuid.UUID, req models.UpdateTaskRequest) (domain.Result[models.TaskDTO], error) {
	owned, err := s.loadOwnedTask(ctx, taskID, userID)
	if err != nil {
		return domain.Result[models.TaskDTO]{}, err
	}
	if owned.IsFailure() {
		return domain.FailFrom[models.TaskDTO](owned), nil
	}

	task := owned.Value()
	if updated := task.Update(req.Title, req.Description); updated.IsFailure() {
		return domain.FailFrom[models.TaskDTO](updated), nil
	}

	return s.persist(ctx, task)
}

// CompleteTask marks the task completed.
func (s *TaskService) CompleteTask(ctx context.Context, taskID, userID uuid.UUID) (domain.Result[models.TaskDTO], error) {
	owned, err := s.loadOwnedTask(ctx, taskID, userID)
	if err != nil {
		return domain.Result[models.TaskDTO]{}, err
	}
	if owned.IsFailure() {
		return domain.FailFrom[models.TaskDTO](owned), nil
	}

	task := owned.Value()
	task.MarkAsCompleted()
	return s.persist(ctx, task)
}

// ReopenTask marks a completed task incomplete again.
func (s *TaskService) ReopenTask(ctx context.Context, taskID, userID uuid.UUID) (domain.Result[models.TaskDTO], error) {
	owned, err := s.loadOwnedTask(ctx, taskID, userID)
	if err != nil {
		return domain.Result[models.TaskDTO]{}, err
	}
	if owned.IsFailure() {
		return domain.FailFrom[models.TaskDTO](owned), nil
	}

	task := owned.Value()
	task.MarkAsIncomplete()
	return s.persist(ctx, task)
}

// MoveTask reassigns a task to another project. Both the task's current parent
// and the destination must belong to the caller.
func (s *TaskService) MoveTask(ctx context.Context, taskID, userID uuid.UUID, req models.MoveTaskRequest) (domain.Result[models.TaskDTO], error) {
	ownedTask, err := s.loadOwnedTask(ctx, taskID, userID)
	if err != nil {
		return domain.Result[models.TaskDTO]{}, err
	}
	if ownedTask.IsFailure() {
		return domain.FailFrom[models.TaskDTO](ownedTask), nil
	}

	ownedDest, err := s.loadOwnedProject(ctx, req.ProjectID, userID)
	if err != nil {
		return domain.Result[models.TaskDTO]{}, err
	}
	if ownedDest.IsFailure() {
		return domain.FailFrom[models.TaskDTO](ownedDest), nil
	}

	task := ownedTask.Value()
	if moved := task.MoveToProject(req.ProjectID); moved.IsFailure() {
		return domain.FailFrom[models.TaskDTO](moved), nil
	}

	return s.persist(ctx, task)
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID, userID uuid.UUID) (domain.Result[domain.Unit], error) {
	owned, err := s.loadOwnedTask(ctx, taskID, userID)
	if err != nil {
		return domain.Result[domain.Unit]{}, err
	}
	if owned.IsFailure() {
		return domain.FailFrom[domain.Unit](owned), nil
	}

	if err := s.uow.Tasks().Delete(ctx, taskID); err != nil {
		return domain.Result[domain.Unit]{}, fmt.Errorf("delete task: %w", err)
	}
	if err := s.uow.SaveChanges(ctx); err != nil {
		return domain.Result[domain.Unit]{}, fmt.Errorf("save changes: %w", err)
	}

	return domain.Done(), nil
}

func (s *TaskService) persist(ctx context.Context, task *domain.TaskItem) (domain.Result[models.TaskDTO], error) {
	if err := s.uow.Tasks().Update(ctx, task); err != nil {
		return domain.Result[models.TaskDTO]{}, fmt.Errorf("update task: %w", err)
	}
	if err := s.uow.SaveChanges(ctx); err != nil {
		return domain.Result[models.TaskDTO]{}, fmt.Errorf("save changes: %w", err)
	}

	return domain.Ok(models.TaskToDTO(task)), nil
}
