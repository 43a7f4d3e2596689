package schedule

import "context"

type EntryRepository interface {
	Create(ctx context.Context, e *Entry) error
	// ListByEmployeeWeek returns one employee's entries for an exact stored
	// week date, ordered by day of week.
	ListByEmployeeWeek(ctx context.Context, employeeID uint64, weekStart string) ([]Entry, error)
	// ListByWeek returns every employee's entries for a week date.
	ListByWeek(ctx context.Context, weekStart string) ([]Entry, error)
	// ListByEmployee returns all stored entries for an employee ordered by
	// week date then day.
	ListByEmployee(ctx context.Context, employeeID uint64) ([]Entry, error)
	// DeleteSlot removes the entry for one (employee, week, day) slot.
	DeleteSlot(ctx context.Context, employeeID uint64, weekStart string, dayOfWeek int) error
}

type PatternRepository interface {
	// GetActive returns the single active pattern, or gorm.ErrRecordNotFound.
	GetActive(ctx context.Context, employeeID uint64) (*Pattern, error)
	// DeactivateAll retires every pattern for the employee.
	DeactivateAll(ctx context.Context, employeeID uint64) error
	Create(ctx context.Context, p *Pattern) error
}
