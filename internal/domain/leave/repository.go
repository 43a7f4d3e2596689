package leave

import "context"

type Repository interface {
	Create(ctx context.Context, r *Request) error
	GetByID(ctx context.Context, id uint64) (*Request, error)
	// GetByIDForUpdate locks the row for the duration of the surrounding tx.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Request, error)
	Save(ctx context.Context, r *Request) error
	// ListPending returns the manager queue, oldest request first.
	ListPending(ctx context.Context) ([]Request, error)
	// ListByEmployee returns one employee's history, most recent first.
	ListByEmployee(ctx context.Context, employeeID uint64) ([]Request, error)
}
