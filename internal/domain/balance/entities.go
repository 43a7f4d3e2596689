package balance

import (
	"errors"
	"time"

	"workforce-backend/internal/domain/leave"
)

var (
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrRecordMissing       = errors.New("leave balance record not found")
	ErrNegativeValue       = errors.New("balance values must not be negative")
	ErrNotEmployee         = errors.New("balances exist only for employee accounts")
)

const (
	DefaultAnnualHours      = 80.0
	DefaultSickHours        = 80.0
	DefaultLongServiceHours = 0.0
)

// Record holds one employee's remaining leave entitlement in hours.
// Invariant: no field is ever negative.
type Record struct {
	ID               uint64    `gorm:"primaryKey;column:id" json:"-"`
	EmployeeID       uint64    `gorm:"column:employee_id;not null;uniqueIndex:ux_leave_balances_employee" json:"employee_id"`
	AnnualHours      float64   `gorm:"column:annual_hours;type:decimal(8,2);default:80" json:"annual_hours"`
	SickHours        float64   `gorm:"column:sick_hours;type:decimal(8,2);default:80" json:"sick_hours"`
	LongServiceHours float64   `gorm:"column:long_service_hours;type:decimal(8,2);default:0" json:"long_service_hours"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Record) TableName() string { return "leave_balances" }

// NewRecord returns a record with the default entitlement.
func NewRecord(employeeID uint64) *Record {
	return &Record{
		EmployeeID:       employeeID,
		AnnualHours:      DefaultAnnualHours,
		SickHours:        DefaultSickHours,
		LongServiceHours: DefaultLongServiceHours,
	}
}

// HoursFor returns the field backing a paid leave type.
// The second result is false for unpaid/other types, which have no field.
func (r *Record) HoursFor(t leave.Type) (float64, bool) {
	switch t {
	case leave.TypeAnnual:
		return r.AnnualHours, true
	case leave.TypeSick:
		return r.SickHours, true
	case leave.TypeLongService:
		return r.LongServiceHours, true
	}
	return 0, false
}

// SetHoursFor writes the field backing a paid leave type.
func (r *Record) SetHoursFor(t leave.Type, v float64) bool {
	switch t {
	case leave.TypeAnnual:
		r.AnnualHours = v
	case leave.TypeSick:
		r.SickHours = v
	case leave.TypeLongService:
		r.LongServiceHours = v
	default:
		return false
	}
	return true
}
