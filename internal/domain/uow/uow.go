package uow

import (
	"context"

	"workforce-backend/internal/domain/balance"
	"workforce-backend/internal/domain/leave"
	"workforce-backend/internal/domain/schedule"
	"workforce-backend/internal/domain/staff"
	"workforce-backend/internal/domain/swap"
)

type Repos struct {
	Staff    staff.Repository
	Balances balance.Repository
	Leaves   leave.Repository
	Swaps    swap.Repository
	Entries  schedule.EntryRepository
	Patterns schedule.PatternRepository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the leave request first, then pass it in
	WithinLeaveTx(ctx context.Context, requestID uint64, fn func(r Repos, req *leave.Request) error) error
}
