package mysql

import (
	"context"

	leaveDomain "workforce-backend/internal/domain/leave"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeaveRepository struct{ db *gorm.DB }

func NewLeaveRepository(db *gorm.DB) *LeaveRepository { return &LeaveRepository{db: db} }

func (r *LeaveRepository) Create(ctx context.Context, req *leaveDomain.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *LeaveRepository) GetByID(ctx context.Context, id uint64) (*leaveDomain.Request, error) {
	var out leaveDomain.Request
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *LeaveRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*leaveDomain.Request, error) {
	var out leaveDomain.Request
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, id)
	return &out, res.Error
}

func (r *LeaveRepository) Save(ctx context.Context, req *leaveDomain.Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *LeaveRepository) ListPending(ctx context.Context) ([]leaveDomain.Request, error) {
	var out []leaveDomain.Request
	res := r.db.WithContext(ctx).
		Where("status = ?", leaveDomain.StatusPending).
		Order("requested_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *LeaveRepository) ListByEmployee(ctx context.Context, employeeID uint64) ([]leaveDomain.Request, error) {
	var out []leaveDomain.Request
	res := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("requested_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
