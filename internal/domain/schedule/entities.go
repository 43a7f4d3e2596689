package schedule

import (
	"errors"
	"time"
)

var (
	ErrInvalidPattern = errors.New("pattern weeks must be at least 1")
	ErrInvalidDate    = errors.New("dates must be YYYY-MM-DD")
)

const (
	ShiftTypeRegular = "regular"
	ShiftTypeLeave   = "leave"
)

// Entry is one employee's shift for a single day of a stored week.
// A slot with empty times means "no shift" and is simply not stored.
type Entry struct {
	ID             uint64 `gorm:"primaryKey;column:id" json:"id"`
	EmployeeID     uint64 `gorm:"column:employee_id;not null;index:idx_schedules_employee_week,priority:1" json:"employee_id"`
	WeekStartDate  string `gorm:"column:week_start_date;size:10;not null;index:idx_schedules_employee_week,priority:2" json:"week_start_date"`
	DayOfWeek      int    `gorm:"column:day_of_week;not null" json:"day_of_week"`
	ShiftStartTime string `gorm:"column:shift_start_time;size:5" json:"shift_start_time"`
	ShiftEndTime   string `gorm:"column:shift_end_time;size:5" json:"shift_end_time"`
	ShiftType      string `gorm:"column:shift_type;size:20" json:"shift_type"`

	// WeekOffset is derived during pattern expansion, never stored.
	WeekOffset int `gorm:"-" json:"week_offset"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Entry) TableName() string { return "employee_schedules" }

// Pattern is a recurring cycle length in weeks. At most one row per employee
// is active; superseded patterns are retired, not deleted.
type Pattern struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"id"`
	EmployeeID   uint64    `gorm:"column:employee_id;not null;index:idx_patterns_employee" json:"employee_id"`
	PatternWeeks int       `gorm:"column:pattern_weeks;not null;default:1" json:"pattern_weeks"`
	IsActive     bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Pattern) TableName() string { return "employee_schedule_patterns" }
