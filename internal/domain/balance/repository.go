package balance

import "context"

type Repository interface {
	GetByEmployeeID(ctx context.Context, employeeID uint64) (*Record, error)
	// GetByEmployeeIDForUpdate locks the row so a sufficiency check and the
	// deduction write cannot interleave with a concurrent approval.
	GetByEmployeeIDForUpdate(ctx context.Context, employeeID uint64) (*Record, error)
	// CreateIfAbsent inserts defaults unless a row already exists; a losing
	// concurrent insert is not an error.
	CreateIfAbsent(ctx context.Context, r *Record) error
	Save(ctx context.Context, r *Record) error
	// Upsert overwrites all three fields, inserting the row if absent.
	Upsert(ctx context.Context, r *Record) error
	ListAll(ctx context.Context) ([]Record, error)
}
