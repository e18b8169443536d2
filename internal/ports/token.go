package ports

import (
	"time"

	"github.com/google/uuid"
)

// TokenIssuer produces opaque credential artifacts for authenticated sessions.
// Callers never inspect the token's internal encoding.
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, username string) (string, error)
	TokenExpiration() time.Time
}
