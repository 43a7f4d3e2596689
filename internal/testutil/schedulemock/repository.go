package schedulemock

import (
	"context"

	domain "workforce-backend/internal/domain/schedule"

	"gorm.io/gorm"
)

var (
	_ domain.EntryRepository   = (*EntryRepo)(nil)
	_ domain.PatternRepository = (*PatternRepo)(nil)
)

// EntryRepo is a function-backed mock that satisfies schedule.EntryRepository.
type EntryRepo struct {
	CreateFn             func(ctx context.Context, e *domain.Entry) error
	ListByEmployeeWeekFn func(ctx context.Context, employeeID uint64, weekStart string) ([]domain.Entry, error)
	ListByWeekFn         func(ctx context.Context, weekStart string) ([]domain.Entry, error)
	ListByEmployeeFn     func(ctx context.Context, employeeID uint64) ([]domain.Entry, error)
	DeleteSlotFn         func(ctx context.Context, employeeID uint64, weekStart string, dayOfWeek int) error
}

func (m *EntryRepo) Create(ctx context.Context, e *domain.Entry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *EntryRepo) ListByEmployeeWeek(ctx context.Context, employeeID uint64, weekStart string) ([]domain.Entry, error) {
	if m.ListByEmployeeWeekFn != nil {
		return m.ListByEmployeeWeekFn(ctx, employeeID, weekStart)
	}
	return nil, nil
}

func (m *EntryRepo) ListByWeek(ctx context.Context, weekStart string) ([]domain.Entry, error) {
	if m.ListByWeekFn != nil {
		return m.ListByWeekFn(ctx, weekStart)
	}
	return nil, nil
}

func (m *EntryRepo) ListByEmployee(ctx context.Context, employeeID uint64) ([]domain.Entry, error) {
	if m.ListByEmployeeFn != nil {
		return m.ListByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (m *EntryRepo) DeleteSlot(ctx context.Context, employeeID uint64, weekStart string, dayOfWeek int) error {
	if m.DeleteSlotFn != nil {
		return m.DeleteSlotFn(ctx, employeeID, weekStart, dayOfWeek)
	}
	return nil
}

// PatternRepo is a function-backed mock that satisfies schedule.PatternRepository.
type PatternRepo struct {
	GetActiveFn     func(ctx context.Context, employeeID uint64) (*domain.Pattern, error)
	DeactivateAllFn func(ctx context.Context, employeeID uint64) error
	CreateFn        func(ctx context.Context, p *domain.Pattern) error
}

func (m *PatternRepo) GetActive(ctx context.Context, employeeID uint64) (*domain.Pattern, error) {
	if m.GetActiveFn != nil {
		return m.GetActiveFn(ctx, employeeID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *PatternRepo) DeactivateAll(ctx context.Context, employeeID uint64) error {
	if m.DeactivateAllFn != nil {
		return m.DeactivateAllFn(ctx, employeeID)
	}
	return nil
}

func (m *PatternRepo) Create(ctx context.Context, p *domain.Pattern) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
