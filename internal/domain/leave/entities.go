package leave

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("leave request not found")
	ErrAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidHours     = errors.New("hours requested must be positive")
	ErrMissingField     = errors.New("leave type and dates are required")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

type Type string

const (
	TypeAnnual      Type = "annual"
	TypeSick        Type = "sick"
	TypeLongService Type = "long_service"
	TypeUnpaid      Type = "unpaid"
	TypeOther       Type = "other"
)

func (t Type) Valid() bool {
	switch t {
	case TypeAnnual, TypeSick, TypeLongService, TypeUnpaid, TypeOther:
		return true
	}
	return false
}

// Paid reports whether approval of this type deducts from the balance ledger.
func (t Type) Paid() bool {
	switch t {
	case TypeAnnual, TypeSick, TypeLongService:
		return true
	}
	return false
}

type Request struct {
	ID             uint64     `gorm:"primaryKey;column:id" json:"id"`
	EmployeeID     uint64     `gorm:"column:employee_id;not null;index:idx_leave_requests_employee" json:"employee_id"`
	Type           Type       `gorm:"column:leave_type;type:enum('annual','sick','long_service','unpaid','other');not null" json:"leave_type"`
	StartDate      string     `gorm:"column:start_date;size:10;not null" json:"start_date"`
	EndDate        string     `gorm:"column:end_date;size:10;not null" json:"end_date"`
	HoursRequested float64    `gorm:"column:hours_requested;type:decimal(8,2)" json:"hours_requested"`
	Comments       string     `gorm:"column:comments;type:text" json:"comments"`
	Status         Status     `gorm:"column:status;type:enum('pending','approved','denied');default:'pending'" json:"status"`
	RequestedAt    time.Time  `gorm:"column:requested_at;autoCreateTime" json:"requested_at"`
	ApprovedAt     *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`
}

func (Request) TableName() string { return "leave_requests" }

// Terminal reports whether no further status transition is allowed.
func (r *Request) Terminal() bool { return r.Status != StatusPending }
