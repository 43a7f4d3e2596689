package balancemock

import (
	"context"

	domain "workforce-backend/internal/domain/balance"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies balance.Repository.
type Repo struct {
	GetByEmployeeIDFn          func(ctx context.Context, employeeID uint64) (*domain.Record, error)
	GetByEmployeeIDForUpdateFn func(ctx context.Context, employeeID uint64) (*domain.Record, error)
	CreateIfAbsentFn           func(ctx context.Context, r *domain.Record) error
	SaveFn                     func(ctx context.Context, r *domain.Record) error
	UpsertFn                   func(ctx context.Context, r *domain.Record) error
	ListAllFn                  func(ctx context.Context) ([]domain.Record, error)
}

func (m *Repo) GetByEmployeeID(ctx context.Context, employeeID uint64) (*domain.Record, error) {
	if m.GetByEmployeeIDFn != nil {
		return m.GetByEmployeeIDFn(ctx, employeeID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByEmployeeIDForUpdate(ctx context.Context, employeeID uint64) (*domain.Record, error) {
	if m.GetByEmployeeIDForUpdateFn != nil {
		return m.GetByEmployeeIDForUpdateFn(ctx, employeeID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) CreateIfAbsent(ctx context.Context, r *domain.Record) error {
	if m.CreateIfAbsentFn != nil {
		return m.CreateIfAbsentFn(ctx, r)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, r *domain.Record) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) Upsert(ctx context.Context, r *domain.Record) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, r)
	}
	return nil
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Record, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}
