package swap

import "context"

type Repository interface {
	Create(ctx context.Context, s *Swap) error
	GetByID(ctx context.Context, id uint64) (*Swap, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Swap, error)
	Save(ctx context.Context, s *Swap) error
	// Delete removes the row entirely; used only for pending withdrawals.
	Delete(ctx context.Context, id uint64) error

	// ListAvailable returns pending swaps the employee may accept: open to
	// anyone or targeted at them, excluding their own proposals.
	ListAvailable(ctx context.Context, employeeID uint64) ([]Swap, error)
	// ListOutgoing returns all of one requester's proposals.
	ListOutgoing(ctx context.Context, requesterID uint64) ([]Swap, error)
	// ListAccepted returns swaps awaiting manager approval.
	ListAccepted(ctx context.Context) ([]Swap, error)
	// ListFinishedInvolving returns the most recent approved/denied swaps in
	// which the employee was requester or accepter, newest first.
	ListFinishedInvolving(ctx context.Context, employeeID uint64, limit int) ([]Swap, error)
}
