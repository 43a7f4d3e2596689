package mysql

import (
	"context"

	scheduleDomain "workforce-backend/internal/domain/schedule"

	"gorm.io/gorm"
)

type ScheduleEntryRepository struct{ db *gorm.DB }

func NewScheduleEntryRepository(db *gorm.DB) *ScheduleEntryRepository {
	return &ScheduleEntryRepository{db: db}
}

func (r *ScheduleEntryRepository) Create(ctx context.Context, e *scheduleDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *ScheduleEntryRepository) ListByEmployeeWeek(ctx context.Context, employeeID uint64, weekStart string) ([]scheduleDomain.Entry, error) {
	var out []scheduleDomain.Entry
	res := r.db.WithContext(ctx).
		Where("employee_id = ? AND week_start_date = ?", employeeID, weekStart).
		Order("day_of_week ASC").
		Find(&out)
	return out, res.Error
}

func (r *ScheduleEntryRepository) ListByWeek(ctx context.Context, weekStart string) ([]scheduleDomain.Entry, error) {
	var out []scheduleDomain.Entry
	res := r.db.WithContext(ctx).
		Where("week_start_date = ?", weekStart).
		Order("employee_id ASC, day_of_week ASC").
		Find(&out)
	return out, res.Error
}

func (r *ScheduleEntryRepository) ListByEmployee(ctx context.Context, employeeID uint64) ([]scheduleDomain.Entry, error) {
	var out []scheduleDomain.Entry
	res := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("week_start_date ASC, day_of_week ASC").
		Find(&out)
	return out, res.Error
}

func (r *ScheduleEntryRepository) DeleteSlot(ctx context.Context, employeeID uint64, weekStart string, dayOfWeek int) error {
	return r.db.WithContext(ctx).
		Where("employee_id = ? AND week_start_date = ? AND day_of_week = ?", employeeID, weekStart, dayOfWeek).
		Delete(&scheduleDomain.Entry{}).Error
}

type SchedulePatternRepository struct{ db *gorm.DB }

func NewSchedulePatternRepository(db *gorm.DB) *SchedulePatternRepository {
	return &SchedulePatternRepository{db: db}
}

func (r *SchedulePatternRepository) GetActive(ctx context.Context, employeeID uint64) (*scheduleDomain.Pattern, error) {
	var out scheduleDomain.Pattern
	res := r.db.WithContext(ctx).
		Where("employee_id = ? AND is_active = ?", employeeID, true).
		Order("id DESC").
		First(&out)
	return &out, res.Error
}

func (r *SchedulePatternRepository) DeactivateAll(ctx context.Context, employeeID uint64) error {
	return r.db.WithContext(ctx).
		Model(&scheduleDomain.Pattern{}).
		Where("employee_id = ?", employeeID).
		Update("is_active", false).Error
}

func (r *SchedulePatternRepository) Create(ctx context.Context, p *scheduleDomain.Pattern) error {
	return r.db.WithContext(ctx).Create(p).Error
}
