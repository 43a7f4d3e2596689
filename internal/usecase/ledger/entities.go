package ledger

import (
	"time"
)

type BalanceDTO struct {
	EmployeeID       uint64    `json:"employee_id"`
	AnnualHours      float64   `json:"annual_hours"`
	SickHours        float64   `json:"sick_hours"`
	LongServiceHours float64   `json:"long_service_hours"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// EmployeeBalanceDTO is the manager listing row: a balance joined with the
// owning employee's name.
type EmployeeBalanceDTO struct {
	BalanceDTO
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

type SetAbsoluteInput struct {
	EmployeeID       uint64
	AnnualHours      float64
	SickHours        float64
	LongServiceHours float64
}
