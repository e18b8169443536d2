package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the aggregate root for an account. The password hash is only ever
// produced from a validated plaintext password; plaintext never persists.
type User struct {
	id           uuid.UUID
	username     Username
	passwordHash PasswordHash
	createdAt    time.Time
}

// RegisterUser creates a new user from raw credentials, hashing the password
// and assigning a fresh identity and UTC creation timestamp.
func RegisterUser(username, password string) Result[*User] {
	usernameResult := NewUsername(username)
	if usernameResult.IsFailure() {
		return FailFrom[*User](usernameResult)
	}

	passwordResult := NewPassword(password)
	if passwordResult.IsFailure() {
		return FailFrom[*User](passwordResult)
	}

	hashResult := HashPassword(passwordResult.Value())
	if hashResult.IsFailure() {
		return FailFrom[*User](hashResult)
	}

	return Ok(&User{
		id:           uuid.New(),
		username:     usernameResult.Value(),
		passwordHash: hashResult.Value(),
		createdAt:    time.Now().UTC(),
	})
}

// LoadUser reconstructs a persisted user from pre-validated components,
// re-checking structural invariants.
func LoadUser(id uuid.UUID, username Username, passwordHash PasswordHash, createdAt time.Time) Result[*User] {
	if id == uuid.Nil {
		return Fail[*User]("Id cannot be empty.")
	}
	if username.value == "" {
		return Fail[*User]("Username cannot be null.")
	}
	if passwordHash.value == "" {
		return Fail[*User]("Password hash cannot be null.")
	}
	if createdAt.IsZero() {
		return Fail[*User]("CreatedAt cannot be default value.")
	}

	return Ok(&User{id: id, username: username, passwordHash: passwordHash, createdAt: createdAt})
}

func (u *User) ID() uuid.UUID              { return u.id }
func (u *User) Username() Username         { return u.username }
func (u *User) PasswordHash() PasswordHash { return u.passwordHash }
func (u *User) CreatedAt() time.Time       { return u.createdAt }

// ValidatePassword reports whether the candidate matches the stored hash.
// Null/empty/whitespace input is always false; mismatch never errors.
func (u *User) ValidatePassword(candidate string) bool {
	if strings.TrimSpace(candidate) == "" {
		return false
	}
	return u.passwordHash.Matches(candidate)
}

// ChangePassword validates and re-hashes the new password. On failure the
// stored hash is left untouched.
func (u *User) ChangePassword(newPassword string) Result[Unit] {
	passwordResult := NewPassword(newPassword)
	if passwordResult.IsFailure() {
		return FailFrom[Unit](passwordResult)
	}

	hashResult := HashPassword(passwordResult.Value())
	if hashResult.IsFailure() {
		return FailFrom[Unit](hashResult)
	}

	u.passwordHash = hashResult.Value()
	return Done()
}
