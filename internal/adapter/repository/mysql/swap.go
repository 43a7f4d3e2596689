package mysql

import (
	"context"

	swapDomain "workforce-backend/internal/domain/swap"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SwapRepository struct{ db *gorm.DB }

func NewSwapRepository(db *gorm.DB) *SwapRepository { return &SwapRepository{db: db} }

func (r *SwapRepository) Create(ctx context.Context, s *swapDomain.Swap) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SwapRepository) GetByID(ctx context.Context, id uint64) (*swapDomain.Swap, error) {
	var out swapDomain.Swap
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *SwapRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*swapDomain.Swap, error) {
	var out swapDomain.Swap
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, id)
	return &out, res.Error
}

func (r *SwapRepository) Save(ctx context.Context, s *swapDomain.Swap) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SwapRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&swapDomain.Swap{}, id).Error
}

func (r *SwapRepository) ListAvailable(ctx context.Context, employeeID uint64) ([]swapDomain.Swap, error) {
	var out []swapDomain.Swap
	res := r.db.WithContext(ctx).
		Where("status = ?", swapDomain.StatusPending).
		Where("requested_with_id IS NULL OR requested_with_id = ?", employeeID).
		Where("requester_id <> ?", employeeID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *SwapRepository) ListOutgoing(ctx context.Context, requesterID uint64) ([]swapDomain.Swap, error) {
	var out []swapDomain.Swap
	res := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *SwapRepository) ListAccepted(ctx context.Context) ([]swapDomain.Swap, error) {
	var out []swapDomain.Swap
	res := r.db.WithContext(ctx).
		Where("status = ?", swapDomain.StatusAccepted).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *SwapRepository) ListFinishedInvolving(ctx context.Context, employeeID uint64, limit int) ([]swapDomain.Swap, error) {
	var out []swapDomain.Swap
	res := r.db.WithContext(ctx).
		Where("requester_id = ? OR accepter_id = ?", employeeID, employeeID).
		Where("status IN ?", []swapDomain.Status{swapDomain.StatusApproved, swapDomain.StatusDenied}).
		Order("id DESC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}
