package mysql

import (
	"context"

	"workforce-backend/internal/domain/leave"
	"workforce-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Staff:    &StaffRepository{db: tx},
		Balances: &BalanceRepository{db: tx},
		Leaves:   &LeaveRepository{db: tx},
		Swaps:    &SwapRepository{db: tx},
		Entries:  &ScheduleEntryRepository{db: tx},
		Patterns: &SchedulePatternRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinLeaveTx(ctx context.Context, requestID uint64, fn func(r uow.Repos, req *leave.Request) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the request row up-front to prevent races
		req, err := r.Leaves.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		return fn(r, req)
	})
}
