package uowmock

import (
	"context"
	"errors"

	"workforce-backend/internal/domain/leave"
	"workforce-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return
// errUnimplemented.
type UoW struct {
	WithinTxFn      func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLeaveTxFn func(ctx context.Context, requestID uint64, fn func(r uow.Repos, req *leave.Request) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough returns a UoW whose transactions simply run the callback
// against the given repos, with WithinLeaveTx locking via GetByIDForUpdate.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(repos)
		},
		WithinLeaveTxFn: func(ctx context.Context, requestID uint64, fn func(r uow.Repos, req *leave.Request) error) error {
			req, err := repos.Leaves.GetByIDForUpdate(ctx, requestID)
			if err != nil {
				return err
			}
			return fn(repos, req)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinLeaveTx(ctx context.Context, requestID uint64, fn func(r uow.Repos, req *leave.Request) error) error {
	if m.WithinLeaveTxFn != nil {
		return m.WithinLeaveTxFn(ctx, requestID, fn)
	}
	return errUnimplemented
}
