package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/Reivaj85/TaskManagerApplication/internal/domain"
	"github.com/Reivaj85/TaskManagerApplication/internal/models"
	"github.com/Reivaj85/TaskManagerApplication/internal/ports"
)

// ProjectService handles project CRUD, always scoped to the authenticated
// owner. Access to someone else's project is denied, distinct from not-found.
type ProjectService struct {
	uow ports.UnitOfWork
}

func NewProjectService(uow ports.UnitOfWork) *ProjectService {
	return &ProjectService{uow: uow}
}

// loadOwned fetches a project and verifies ownership. The returned failure
// distinguishes "Project not found." from "Access denied.".
func (s *ProjectService) loadOwned(ctx context.Context, projectID, userID uuid.UUID) (domain.Result[*domain.Project], error) {
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

func (s *ProjectService) ListProjects(ctx context.Context, userID uuid.UUID) (domain.Result[[]models.ProjectDTO], error) {
	projects, err := s.uow.Projects().ListByUser(ctx, userID)
	if err != nil {
		return domain.Result[[]models.ProjectDTO]{}, fmt.Errorf("list projects: %w", err)
	}

	dtos := make([]models.ProjectDTO, 0, len(projects))
	for _, project := range projects {
		count, err := s.uow.Tasks().CountByProject(ctx, project.ID())
		if err != nil {
			return domain.Result[[]models.ProjectDTO]{}, fmt.Errorf("count tasks: %w", err)
		}
		dtos = append(dtos, models.ProjectToDTO(project, count))
	}

	return domain.Ok(dtos), nil
}

func (s *ProjectService) GetProject(ctx context.Context, projectID, userID uuid.UUID) (domain.Result[models.ProjectDTO], error) {
	owned, err := s.loadOwned(ctx, projectID, userID)
	if err != nil {
		return domain.Result[models.ProjectDTO]{}, err
	}
	if owned.IsFailure() {
		return domain.FailFrom[models.ProjectDTO](owned), nil
	}

	count, err := s.uow.Tasks().CountByProject(ctx, projectID)
	if err != nil {
		return domain.Result[models.ProjectDTO]{}, fmt.Errorf("count tasks: %w", err)
	}

	return domain.Ok(models.ProjectToDTO(owned.Value(), count)), nil
}

func (s *ProjectService) CreateProject(ctx context.Context, userID uuid.UUID, req models.CreateProjectRequest) (domain.Result[models.ProjectDTO], error) {
	projectResult := domain.NewProject(userID, req.Name, false)
	if projectResult.IsFailure() {
		return domain.FailFrom[models.ProjectDTO](projectResult), nil
	}

	project := projectResult.Value()
	if err := s.uow.Projects().Add(ctx, project); err != nil {
		return domain.Result[models.ProjectDTO]{}, fmt.Errorf("add project: %w", err)
	}
	if err := s.uow.SaveChanges(ctx); err != nil {
		return domain.Result[models.ProjectDTO]{}, fmt.Errorf("save changes: %w", err)
	}

	return domain.Ok(models.ProjectToDTO(project, 0)), nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, projectID, userID uuid.UUID, req models.UpdateProjectRequest) (domain.Result[models.ProjectDTO], error) {
	owned, err := s.loadOwned(ctx, projectID, userID)
	if err != nil {
		return domain.Result[models.ProjectDTO]{}, err
	}
	if owned.IsFailure() {
		return domain.FailFrom[models.ProjectDTO](owned), nil
	}

	project := owned.Value()
	if renamed := project.Rename(req.Name); renamed.IsFailure() {
		return domain.FailFrom[models.ProjectDTO](renamed), nil
	}

	if err := s.uow.Projects().Update(ctx, project); err != nil {
		return domain.Result[models.ProjectDTO]{}, fmt.Errorf("update project: %w", err)
	}
	if err := s.uow.SaveChanges(ctx); err != nil {
		return domain.Result[models.ProjectDTO]{}, fmt.Errorf("save changes: %w", err)
	}

	count, err := s.uow.Tasks().CountByProject(ctx, projectID)
	if err != nil {
		return domain.Result[models.ProjectDTO]{}, fmt.Errorf("count tasks: %w", err)
	}

	return domain.Ok(models.ProjectToDTO(project, count)), nil
}

// DeleteProject removes a non-default project and all its tasks. The cascade
// is explicit rather than delegated to the storage engine.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID, userID uuid.UUID) (domain.Result[domain.Unit], error) {
	owned, err := s.loadOwned(ctx, projectID, userID)
	if err != nil {
		return domain.Result[domain.Unit]{}, err
	}
	if owned.IsFailure() {
		return domain.FailFrom[domain.Unit](owned), nil
	}

	if owned.Value().IsDefault() {
		return domain.Fail[domain.Unit]("Cannot delete default project."), nil
	}

	tasks, err := s.uow.Tasks().ListByProject(ctx, projectID)
	if err != nil {
		return domain.Result[domain.Unit]{}, fmt.Errorf("list tasks: %w", err)
	}
	for _, task := range tasks {
		if err := s.uow.Tasks().Delete(ctx, task.ID()); err != nil {
			return domain.Result[domain.Unit]{}, fmt.Errorf("delete task %s: %w", task.ID(), err)
		}
	}

	if err := s.uow.Projects().Delete(ctx, projectID); err != nil {
		return domain.Result[domain.Unit]{}, fmt.Errorf("delete project: %w", err)
	}
	if err := s.uow.SaveChanges(ctx); err != nil {
		return domain.Result[domain.Unit]{}, fmt.Errorf("save changes: %w", err)
	}

	log.Printf("Deleted project %s and %d tasks for user %s", projectID, len(tasks), userID)
	return domain.Done(), nil
}

// SetDefaultProject moves the default flag to the given project, unmarking the
// previous default in the same transaction so exactly one default survives.
func (s *ProjectService) SetDefaultProject(ctx context.Context, projectID, userID uuid.UUID) (domain.Result[models.ProjectDTO], error) {
	owned, err := s.loadOwned(ctx, projectID, userID)
	if err != nil {
		return domain.Result[models.ProjectDTO]{}, err
	}
	if owned.IsFailure() {
		return domain.FailFrom[models.ProjectDTO](owned), nil
	}

	project := owned.Value()
	if project.IsDefault() {
		count, err := s.uow.Tasks().CountByProject(ctx, projectID)
		if err != nil {
			return domain.Result[models.ProjectDTO]{}, fmt.Errorf("count tasks: %w", err)
		}
		return domain.Ok(models.ProjectToDTO(project, count)), nil
	}

	current, err := s.uow.Projects().GetDefault(ctx, userID)
	if err != nil {
		return domain.Result[models.ProjectDTO]{}, fmt.Errorf("load default project: %w", err)
	}

	tx, err := s.uow.BeginTx(ctx)
	if err != nil {
		return domain.Result[models.ProjectDTO]{}, fmt.Errorf("begin tx: %w", err)
	}
	if current != nil {
		current.UnmarkAsDefault()
		if err := tx.Projects().Update(ctx, current); err != nil {
			_ = tx.Rollback(ctx)
			return domain.Result[models.ProjectDTO]{}, fmt.Errorf("unmark default: %w", err)
		}
	}
	project.MarkAsDefault()
	if err := tx.Projects().Update(ctx, project); err != nil {
		_ = tx.Rollback(ctx)
		return domain.Result[models.ProjectDTO]{}, fmt.Errorf("mark default: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Result[models.ProjectDTO]{}, fmt.Errorf("commit default change: %w", err)
	}

	count, err := s.uow.Tasks().CountByProject(ctx, projectID)
	if err != nil {
		return domain.Result[models.ProjectDTO]{}, fmt.Errorf("count tasks: %w", err)
	}

	return domain.Ok(models.ProjectToDTO(project, count)), nil
}
