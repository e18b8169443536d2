package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/Reivaj85/TaskManagerApplication/internal/testutil"
)

func newFakeUnitOfWork() *testutil.MemoryUnitOfWork {
	return testutil.NewMemoryUnitOfWork()
}

// fakeTokenIssuer issues predictable tokens for service tests.
type fakeTokenIssuer struct{}

func (fakeTokenIssuer) GenerateToken(userID uuid.UUID, username string) (string, error) {
	return "token-" + username, nil
}

func (fakeTokenIssuer) TokenExpiration() time.Time {
	return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
}
