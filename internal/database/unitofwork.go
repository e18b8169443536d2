package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Reivaj85/TaskManagerApplication/internal/ports"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx, so repositories run against
// whichever the unit of work holds.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// UnitOfWork implements ports.UnitOfWork over a SQLite connection. Repository
// writes apply immediately. BeginTx returns a child UnitOfWork bound to a
// transaction; the parent carries no mutable state and is safe to share across
// concurrent requests.
type UnitOfWork struct {
	db *sql.DB
	tx *sql.Tx

	users    *UserRepository
	projects *ProjectRepository
	tasks    *TaskRepository
}

func NewUnitOfWork(db *sql.DB) *UnitOfWork {
	return newUnitOfWork(db, nil)
}

func newUnitOfWork(db *sql.DB, tx *sql.Tx) *UnitOfWork {
	uow := &UnitOfWork{db: db, tx: tx}
	uow.users = &UserRepository{uow: uow}
	uow.projects = &ProjectRepository{uow: uow}
	uow.tasks = &TaskRepository{uow: uow}
	return uow
}

func (u *UnitOfWork) Users() ports.UserRepository       { return u.users }
func (u *UnitOfWork) Projects() ports.ProjectRepository { return u.projects }
func (u *UnitOfWork) Tasks() ports.TaskRepository       { return u.tasks }

// conn returns the transaction this unit of work is bound to, or the bare
// connection for a non-transactional one.
func (u *UnitOfWork) conn() dbtx {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// SaveChanges is a no-op outside a transaction: repository writes are applied
// immediately, one business operation is one commit.
func (u *UnitOfWork) SaveChanges(ctx context.Context) error {
	return ctx.Err()
}

// BeginTx opens a transaction and returns a UnitOfWork whose repositories all
// run inside it. The receiver is left untouched.
func (u *UnitOfWork) BeginTx(ctx context.Context) (ports.UnitOfWork, error) {
	if u.tx != nil {
		return nil, errors.New("transaction already started")
	}

	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	return newUnitOfWork(u.db, tx), nil
}

func (u *UnitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return errors.New("no transaction to commit")
	}

	err := u.tx.Commit()
	u.tx = nil
	return err
}

func (u *UnitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		return errors.New("no transaction to rollback")
	}

	err := u.tx.Rollback()
	u.tx = nil
	return err
}
