package swapmock

import (
	"context"

	domain "workforce-backend/internal/domain/swap"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies swap.Repository.
type Repo struct {
	CreateFn                func(ctx context.Context, s *domain.Swap) error
	GetByIDFn               func(ctx context.Context, id uint64) (*domain.Swap, error)
	GetByIDForUpdateFn      func(ctx context.Context, id uint64) (*domain.Swap, error)
	SaveFn                  func(ctx context.Context, s *domain.Swap) error
	DeleteFn                func(ctx context.Context, id uint64) error
	ListAvailableFn         func(ctx context.Context, employeeID uint64) ([]domain.Swap, error)
	ListOutgoingFn          func(ctx context.Context, requesterID uint64) ([]domain.Swap, error)
	ListAcceptedFn          func(ctx context.Context) ([]domain.Swap, error)
	ListFinishedInvolvingFn func(ctx context.Context, employeeID uint64, limit int) ([]domain.Swap, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.Swap) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Swap, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Swap, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Save(ctx context.Context, s *domain.Swap) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) ListAvailable(ctx context.Context, employeeID uint64) ([]domain.Swap, error) {
	if m.ListAvailableFn != nil {
		return m.ListAvailableFn(ctx, employeeID)
	}
	return nil, nil
}

func (m *Repo) ListOutgoing(ctx context.Context, requesterID uint64) ([]domain.Swap, error) {
	if m.ListOutgoingFn != nil {
		return m.ListOutgoingFn(ctx, requesterID)
	}
	return nil, nil
}

func (m *Repo) ListAccepted(ctx context.Context) ([]domain.Swap, error) {
	if m.ListAcceptedFn != nil {
		return m.ListAcceptedFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListFinishedInvolving(ctx context.Context, employeeID uint64, limit int) ([]domain.Swap, error) {
	if m.ListFinishedInvolvingFn != nil {
		return m.ListFinishedInvolvingFn(ctx, employeeID, limit)
	}
	return nil, nil
}
