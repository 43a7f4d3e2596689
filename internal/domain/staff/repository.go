package staff

import "context"

type Repository interface {
	GetByID(ctx context.Context, id uint64) (*Employee, error)
	// ListEmployees returns employee-role accounts ordered by full name.
	ListEmployees(ctx context.Context) ([]Employee, error)
}
