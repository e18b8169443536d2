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

// UserRepository is the SQLite implementation of ports.UserRepository.
type UserRepository struct {
	uow *UnitOfWork
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE id = ?`

	return r.scanUser(r.uow.conn().QueryRowContext(ctx, query, id.String()))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = ? COLLATE NOCASE`

	return r.scanUser(r.uow.conn().QueryRowContext(ctx, query, username))
}

func (r *UserRepository) Add(ctx context.Context, user *domain.User) error {
	const query = `
		INSERT INTO users (id, username, password_hash, created_at)
		VALUES (?, ?, ?, ?)`

	_, err := r.uow.conn().ExecContext(ctx, query,
		user.ID().String(),
		user.Username().String(),
		user.PasswordHash().Stored(),
		user.CreatedAt().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
		UPDATE users
		SET username = ?, password_hash = ?
		WHERE id = ?`

	_, err := r.uow.conn().ExecContext(ctx, query,
		user.Username().String(),
		user.PasswordHash().Stored(),
		user.ID().String(),
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *UserRepository) Exists(ctx context.Context, username string) (bool, error) {
	const query = `SELECT COUNT(1) FROM users WHERE username = ? COLLATE NOCASE`

	var count int
	if err := r.uow.conn().QueryRowContext(ctx, query, username).Scan(&count); err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) scanUser(row *sql.Row) (*domain.User, error) {
	var (
		id        string
		username  string
		hash      string
		createdAt string
	)

	if err := row.Scan(&id, &username, &hash, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return buildUser(id, username, hash, createdAt)
}

func buildUser(id, username, hash, createdAt string) (*domain.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse user id %q: %w", id, err)
	}

	created, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse user created_at %q: %w", createdAt, err)
	}

	nameResult := domain.NewUsername(username)
	if nameResult.IsFailure() {
		return nil, fmt.Errorf("stored username invalid: %s", nameResult.Err())
	}
	hashResult := domain.PasswordHashFromStored(hash)
	if hashResult.IsFailure() {
		return nil, fmt.Errorf("stored password hash invalid: %s", hashResult.Err())
	}

	userResult := domain.LoadUser(userID, nameResult.Value(), hashResult.Value(), created)
	if userResult.IsFailure() {
		return nil, fmt.Errorf("load user %s: %s", id, userResult.Err())
	}
	return userResult.Value(), nil
}
