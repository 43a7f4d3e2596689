package swap

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("shift swap not found or not in the required state")
	ErrSelfAccept   = errors.New("cannot accept your own shift swap")
	ErrMissingShift = errors.New("both shift descriptors are required")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

type Swap struct {
	ID             uint64  `gorm:"primaryKey;column:id" json:"id"`
	RequesterID    uint64  `gorm:"column:requester_id;not null;index:idx_shift_swaps_requester" json:"requester_id"`
	RequesterShift string  `gorm:"column:requester_shift;size:128;not null" json:"requester_shift"`
	RequestedShift string  `gorm:"column:requested_shift;size:128;not null" json:"requested_shift"`
	RequestedWith  *uint64 `gorm:"column:requested_with_id" json:"requested_with_id,omitempty"`
	AccepterID     *uint64 `gorm:"column:accepter_id" json:"accepter_id,omitempty"`
	Status         Status  `gorm:"column:status;type:enum('pending','accepted','approved','denied');default:'pending'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Swap) TableName() string { return "shift_swaps" }
