package leave

import (
	"time"

	leaveDomain "workforce-backend/internal/domain/leave"
)

type SubmitInput struct {
	LeaveType string
	StartDate string
	EndDate   string
	Hours     float64
	Comments  string
}

type RequestDTO struct {
	ID             uint64             `json:"id"`
	EmployeeID     uint64             `json:"employee_id"`
	LeaveType      leaveDomain.Type   `json:"leave_type"`
	StartDate      string             `json:"start_date"`
	EndDate        string             `json:"end_date"`
	HoursRequested float64            `json:"hours_requested"`
	Comments       string             `json:"comments,omitempty"`
	Status         leaveDomain.Status `json:"status"`
	RequestedAt    time.Time          `json:"requested_at"`
	ApprovedAt     *time.Time         `json:"approved_at,omitempty"`
}

// PendingDTO is the manager queue row: a pending request plus the
// requester's name.
type PendingDTO struct {
	RequestDTO
	FullName string `json:"full_name"`
}

// ApprovalDTO carries caller-facing messaging detail; the request row is the
// authoritative state.
type ApprovalDTO struct {
	RequestID     uint64           `json:"request_id"`
	LeaveType     leaveDomain.Type `json:"leave_type"`
	HoursDeducted float64          `json:"hours_deducted"`
	ApprovedAt    time.Time        `json:"approved_at"`
}
