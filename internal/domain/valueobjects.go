package domain

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// Value objects wrap validated primitives. They are only constructed through
// the New* factories; the zero value is usable nowhere in the domain.

// Username is a validated user name, trimmed, 3-50 characters.
type Username struct {
	value string
}

func NewUsername(raw string) Result[Username] {
	if strings.TrimSpace(raw) == "" {
		return Fail[Username]("Username cannot be null or empty.")
	}

	trimmed := strings.TrimSpace(raw)
	if utf8.RuneCountInString(trimmed) < 3 {
		return Fail[Username]("Username must be at least 3 characters long.")
	}
	if utf8.RuneCountInString(trimmed) > 50 {
		return Fail[Username]("Username cannot exceed 50 characters.")
	}

	return Ok(Username{value: trimmed})
}

func (u Username) String() string { return u.value }

// Password is a plaintext password, ephemeral, never persisted. It is
// validated on the raw string: trimming would change authentication semantics.
type Password struct {
	value string
}

func NewPassword(raw string) Result[Password] {
	if strings.TrimSpace(raw) == "" {
		return Fail[Password]("Password cannot be null or empty.")
	}
	if utf8.RuneCountInString(raw) < 6 {
		return Fail[Password]("Password must be at least 6 characters long.")
	}
	if utf8.RuneCountInString(raw) > 100 {
		return Fail[Password]("Password cannot exceed 100 characters.")
	}

	return Ok(Password{value: raw})
}

// String masks the value so a Password never leaks through logging.
func (p Password) String() string { return "***" }

// PasswordHash is an opaque bcrypt hash. It can only be produced by hashing a
// validated Password or by reloading a stored hash.
type PasswordHash struct {
	value string
}

// bcrypt reads at most 72 bytes of input; GenerateFromPassword errors beyond
// that. Passwords validate up to 100 characters, so both hashing and
// verification truncate to keep the full accepted range working consistently.
const bcryptInputLimit = 72

func bcryptInput(raw string) []byte {
	b := []byte(raw)
	if len(b) > bcryptInputLimit {
		b = b[:bcryptInputLimit]
	}
	return b
}

func HashPassword(password Password) Result[PasswordHash] {
	hash, err := bcrypt.GenerateFromPassword(bcryptInput(password.value), bcrypt.DefaultCost)
	if err != nil || len(hash) == 0 {
		return Fail[PasswordHash]("Failed to hash password.")
	}

	return Ok(PasswordHash{value: string(hash)})
}

// PasswordHashFromStored wraps an already hashed value loaded from the
// database. Content is opaque; only non-emptiness is checked.
func PasswordHashFromStored(hashed string) Result[PasswordHash] {
	if strings.TrimSpace(hashed) == "" {
		return Fail[PasswordHash]("Password hash cannot be null or empty.")
	}

	return Ok(PasswordHash{value: hashed})
}

// Matches verifies a candidate plaintext against the hash. It never errors on
// mismatch; any verification failure reads as false.
func (h PasswordHash) Matches(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(h.value), bcryptInput(candidate)) == nil
}

func (h PasswordHash) String() string { return "***" }

// Stored returns the raw hash for persistence.
func (h PasswordHash) Stored() string { return h.value }

// ProjectName is a validated project name, trimmed, 1-100 characters.
type ProjectName struct {
	value string
}

func NewProjectName(raw string) Result[ProjectName] {
	if strings.TrimSpace(raw) == "" {
		return Fail[ProjectName]("Project name cannot be null or empty.")
	}

	trimmed := strings.TrimSpace(raw)
	if utf8.RuneCountInString(trimmed) > 100 {
		return Fail[ProjectName]("Project name cannot exceed 100 characters.")
	}

	return Ok(ProjectName{value: trimmed})
}

func (n ProjectName) String() string { return n.value }

// TaskTitle is a validated task title, trimmed, 1-200 characters.
type TaskTitle struct {
	value string
}

func NewTaskTitle(raw string) Result[TaskTitle] {
	if strings.TrimSpace(raw) == "" {
		return Fail[TaskTitle]("Task title cannot be null or empty.")
	}

	trimmed := strings.TrimSpace(raw)
	if utf8.RuneCountInString(trimmed) > 200 {
		return Fail[TaskTitle]("Task title cannot exceed 200 characters.")
	}

	return Ok(TaskTitle{value: trimmed})
}

func (t TaskTitle) String() string { return t.value }

// TaskDescription is an optional task description, trimmed, up to 1000
// characters. The empty string is valid.
type TaskDescription struct {
	value string
}

func NewTaskDescription(raw string) Result[TaskDescription] {
	trimmed := strings.TrimSpace(raw)
	if utf8.RuneCountInString(trimmed) > 1000 {
		return Fail[TaskDescription]("Task description cannot exceed 1000 characters.")
	}

	return Ok(TaskDescription{value: trimmed})
}

func (d TaskDescription) String() string { return d.value }
