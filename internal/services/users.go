package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Reivaj85/TaskManagerApplication/internal/domain"
	"github.com/Reivaj85/TaskManagerApplication/internal/models"
	"github.com/Reivaj85/TaskManagerApplication/internal/ports"
)

// UserService handles profile reads and password changes.
type UserService struct {
	uow ports.UnitOfWork
}

func NewUserService(uow ports.UnitOfWork) *UserService {
	return &UserService{uow: uow}
}

func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (domain.Result[models.UserDTO], error) {
	user, err := s.uow.Users().GetByID(ctx, userID)
	if err != nil {
		return domain.Result[models.UserDTO]{}, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return domain.Fail[models.UserDTO]("User not found."), nil
	}

	return domain.Ok(models.UserToDTO(user)), nil
}

// UpdateUser applies an optional password change. With no new password the
// call is a no-op returning the current profile. A new password requires the
// current one to validate first.
func (s *UserService) UpdateUser(ctx context.Context, userID uuid.UUID, req models.UpdateUserRequest) (domain.Result[models.UserDTO], error) {
	user, err := s.uow.Users().GetByID(ctx, userID)
	if err != nil {
		return domain.Result[models.UserDTO]{}, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return domain.Fail[models.UserDTO]("User not found."), nil
	}

	if req.NewPassword == "" {
		return domain.Ok(models.UserToDTO(user)), nil
	}

	if req.CurrentPassword == "" {
		return domain.Fail[models.UserDTO]("Current password is required to change password."), nil
	}
	if !user.ValidatePassword(req.CurrentPassword) {
		return domain.Fail[models.UserDTO]("Current password is incorrect."), nil
	}

	if changed := user.ChangePassword(req.NewPassword); changed.IsFailure() {
		return domain.FailFrom[models.UserDTO](changed), nil
	}

	if err := s.uow.Users().Update(ctx, user); err != nil {
		return domain.Result[models.UserDTO]{}, fmt.Errorf("update user: %w", err)
	}
	if err := s.uow.SaveChanges(ctx); err != nil {
		return domain.Result[models.UserDTO]{}, fmt.Errorf("save changes: %w", err)
	}

	return domain.Ok(models.UserToDTO(user)), nil
}
