package mysql

import (
	"context"
	"errors"

	staffDomain "workforce-backend/internal/domain/staff"

	"gorm.io/gorm"
)

type StaffRepository struct{ db *gorm.DB }

func NewStaffRepository(db *gorm.DB) *StaffRepository { return &StaffRepository{db: db} }

func (r *StaffRepository) GetByID(ctx context.Context, id uint64) (*staffDomain.Employee, error) {
	var out staffDomain.Employee
	res := r.db.WithContext(ctx).First(&out, id)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, staffDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *StaffRepository) ListEmployees(ctx context.Context) ([]staffDomain.Employee, error) {
	var out []staffDomain.Employee
	res := r.db.WithContext(ctx).
		Where("role = ?", staffDomain.RoleEmployee).
		Order("full_name ASC, id ASC").
		Find(&out)
	return out, res.Error
}
