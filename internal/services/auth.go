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

// AuthenticationService handles registration, login and session lookup.
// Business failures come back as failed Results; a non-nil error is an
// infrastructure problem.
type AuthenticationService struct {
	uow    ports.UnitOfWork
	tokens ports.TokenIssuer
}

func NewAuthenticationService(uow ports.UnitOfWork, tokens ports.TokenIssuer) *AuthenticationService {
	return &AuthenticationService{uow: uow, tokens: tokens}
}

// Register creates a new user together with their default "Personal" project
// in a single transaction, then issues a session token.
func (s *AuthenticationService) Register(ctx context.Context, req models.RegisterRequest) (domain.Result[models.AuthResponse], error) {
	taken, err := s.uow.Users().Exists(ctx, req.Username)
	if err != nil {
		return domain.Result[models.AuthResponse]{}, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return domain.Fail[models.AuthResponse]("Username already exists."), nil
	}

	userResult := domain.RegisterUser(req.Username, req.Password)
	if userResult.IsFailure() {
		return domain.FailFrom[models.AuthResponse](userResult), nil
	}
	user := userResult.Value()

	projectResult := domain.NewDefaultProject(user.ID())
	if projectResult.IsFailure() {
		return domain.FailFrom[models.AuthResponse](projectResult), nil
	}

	// User and default project must become durable together.
	tx, err := s.uow.BeginTx(ctx)
	if err != nil {
		return domain.Result[models.AuthResponse]{}, fmt.Errorf("begin registration tx: %w", err)
	}
	if err := tx.Users().Add(ctx, user); err != nil {
		_ = tx.Rollback(ctx)
		return domain.Result[models.AuthResponse]{}, fmt.Errorf("add user: %w", err)
	}
	if err := tx.Projects().Add(ctx, projectResult.Value()); err != nil {
		_ = tx.Rollback(ctx)
		return domain.Result[models.AuthResponse]{}, fmt.Errorf("add default project: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Result[models.AuthResponse]{}, fmt.Errorf("commit registration: %w", err)
	}

	log.Printf("Registered user %s (%s) with default project", user.Username(), user.ID())

	return s.issue(user)
}

// Login authenticates a username/password pair. Unknown user and wrong
// password fail with the same generic message.
func (s *AuthenticationService) Login(ctx context.Context, req models.LoginRequest) (domain.Result[models.AuthResponse], error) {
	user, err := s.uow.Users().GetByUsername(ctx, req.Username)
	if err != nil {
		return domain.Result[models.AuthResponse]{}, fmt.Errorf("load user: %w", err)
	}
	if user == nil || !user.ValidatePassword(req.Password) {
		return domain.Fail[models.AuthResponse]("Invalid username or password."), nil
	}

	return s.issue(user)
}

// CurrentUser re-issues a session response for an already authenticated user.
func (s *AuthenticationService) CurrentUser(ctx context.Context, userID uuid.UUID) (domain.Result[models.AuthResponse], error) {
	user, err := s.uow.Users().GetByID(ctx, userID)
	if err != nil {
		return domain.Result[models.AuthResponse]{}, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return domain.Fail[models.AuthResponse]("User not found."), nil
	}

	return s.issue(user)
}

func (s *AuthenticationService) issue(user *domain.User) (domain.Result[models.AuthResponse], error) {
	token, err := s.tokens.GenerateToken(user.ID(), user.Username().String())
	if err != nil {
		return domain.Result[models.AuthResponse]{}, fmt.Errorf("generate token: %w", err)
	}

	return domain.Ok(models.AuthResponse{
		Token:     token,
		User:      models.UserToDTO(user),
		ExpiresAt: s.tokens.TokenExpiration(),
	}), nil
}
