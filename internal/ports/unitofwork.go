package ports

import "context"

// UnitOfWork groups the repositories behind a single commit boundary. Default
// operations commit each repository write immediately; BeginTx opens an
// explicit transaction spanning the writes until Commit or Rollback.
type UnitOfWork interface {
	Users() UserRepository
	Projects() ProjectRepository
	Tasks() TaskRepository

	// SaveChanges flushes pending work. Repository writes are applied
	// immediately, so outside a transaction this is a no-op kept for the
	// one-operation-one-commit contract.
	SaveChanges(ctx context.Context) error

	// BeginTx opens a transaction and returns a UnitOfWork scoped to it. The
	// receiver is not modified, so it remains safe for concurrent requests;
	// writes through the receiver while the transaction is open commit
	// independently of it.
	BeginTx(ctx context.Context) (UnitOfWork, error)

	// Commit and Rollback close the transaction this UnitOfWork is scoped to.
	// Both error on a UnitOfWork that BeginTx did not produce.
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
