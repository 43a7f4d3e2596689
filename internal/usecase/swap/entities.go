package swap

import (
	swapDomain "workforce-backend/internal/domain/swap"
)

type ProposeInput struct {
	RequesterShift string
	RequestedShift string
	// RequestedWith restricts acceptance intent to one colleague; nil means
	// open to anyone.
	RequestedWith *uint64
}

type SwapDTO struct {
	ID             uint64            `json:"id"`
	RequesterID    uint64            `json:"requester_id"`
	RequesterShift string            `json:"requester_shift"`
	RequestedShift string            `json:"requested_shift"`
	RequestedWith  *uint64           `json:"requested_with_id,omitempty"`
	AccepterID     *uint64           `json:"accepter_id,omitempty"`
	Status         swapDomain.Status `json:"status"`
}

// AvailableDTO is a pending swap another employee may accept.
type AvailableDTO struct {
	SwapDTO
	FromColleague string `json:"from_colleague"`
}

// OutgoingDTO is one of the caller's own proposals.
type OutgoingDTO struct {
	SwapDTO
	WithColleague string `json:"with_colleague,omitempty"`
}

// AcceptedDTO is a manager-queue row with both parties named.
type AcceptedDTO struct {
	SwapDTO
	RequesterName string `json:"requester_name"`
	AccepterName  string `json:"accepter_name"`
}

// HistoryDTO re-projects a finished swap into the caller's perspective.
type HistoryDTO struct {
	MyRole         string            `json:"my_role"`
	MyShift        string            `json:"my_shift"`
	ColleagueName  string            `json:"colleague_name"`
	ColleagueShift string            `json:"colleague_shift"`
	Status         swapDomain.Status `json:"status"`
}
