package staffmock

import (
	"context"

	domain "workforce-backend/internal/domain/staff"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies staff.Repository.
// Fill in the function fields you need in a test.
type Repo struct {
	GetByIDFn       func(ctx context.Context, id uint64) (*domain.Employee, error)
	ListEmployeesFn func(ctx context.Context) ([]domain.Employee, error)
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Employee, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	if m.ListEmployeesFn != nil {
		return m.ListEmployeesFn(ctx)
	}
	return nil, nil
}
