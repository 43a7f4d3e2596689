package swap

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"workforce-backend/internal/domain/staff"
	swapDomain "workforce-backend/internal/domain/swap"
	"workforce-backend/internal/domain/uow"
)

const defaultHistoryLimit = 3

type Usecase struct {
	swaps swapDomain.Repository
	staff staff.Repository
	uow   uow.UnitOfWork
	log   *logrus.Logger
}

func NewUsecase(swaps swapDomain.Repository, st staff.Repository, tx uow.UnitOfWork, log *logrus.Logger) *Usecase {
	return &Usecase{swaps: swaps, staff: st, uow: tx, log: log}
}

func toDTO(s *swapDomain.Swap) SwapDTO {
	return SwapDTO{
		ID:             s.ID,
		RequesterID:    s.RequesterID,
		RequesterShift: s.RequesterShift,
		RequestedShift: s.RequestedShift,
		RequestedWith:  s.RequestedWith,
		AccepterID:     s.AccepterID,
		Status:         s.Status,
	}
}

// Propose creates a pending swap, optionally targeted at one colleague.
func (u *Usecase) Propose(ctx context.Context, actor staff.Identity, in ProposeInput) (*SwapDTO, error) {
	if in.RequesterShift == "" || in.RequestedShift == "" {
		return nil, swapDomain.ErrMissingShift
	}

	s := &swapDomain.Swap{
		RequesterID:    actor.EmployeeID,
		RequesterShift: in.RequesterShift,
		RequestedShift: in.RequestedShift,
		RequestedWith:  in.RequestedWith,
		Status:         swapDomain.StatusPending,
	}
	if err := u.swaps.Create(ctx, s); err != nil {
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"swap_id":      s.ID,
		"requester_id": actor.EmployeeID,
	}).Info("shift swap proposed")
	dto := toDTO(s)
	return &dto, nil
}

// Accept transitions pending -> accepted and records the accepter.
// A targeted swap is not restricted to its named colleague here; only
// self-acceptance is rejected. ListAvailable filters targeted swaps away
// from other users, so this path matches the listing the accepter saw.
func (u *Usecase) Accept(ctx context.Context, actor staff.Identity, swapID uint64) error {
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		s, err := r.Swaps.GetByIDForUpdate(ctx, swapID)
		if err != nil {
			return err
		}
		if s.Status != swapDomain.StatusPending {
			return swapDomain.ErrNotFound
		}
		if s.RequesterID == actor.EmployeeID {
			return swapDomain.ErrSelfAccept
		}

		accepter := actor.EmployeeID
		s.Status = swapDomain.StatusAccepted
		s.AccepterID = &accepter
		return r.Swaps.Save(ctx, s)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return swapDomain.ErrNotFound
		}
		return err
	}

	u.log.WithFields(logrus.Fields{
		"swap_id":     swapID,
		"accepter_id": actor.EmployeeID,
	}).Info("shift swap accepted, awaiting manager approval")
	return nil
}

func (u *Usecase) decide(ctx context.Context, actor staff.Identity, swapID uint64, to swapDomain.Status) error {
	if !actor.IsManager() {
		return staff.ErrForbidden
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		s, err := r.Swaps.GetByIDForUpdate(ctx, swapID)
		if err != nil {
			return err
		}
		if s.Status != swapDomain.StatusAccepted {
			return swapDomain.ErrNotFound
		}
		s.Status = to
		return r.Swaps.Save(ctx, s)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return swapDomain.ErrNotFound
		}
		return err
	}

	u.log.WithFields(logrus.Fields{
		"swap_id":    swapID,
		"manager_id": actor.EmployeeID,
		"status":     to,
	}).Info("shift swap decided")
	return nil
}

// ManagerApprove finalizes an accepted swap. The negotiation state machine
// ends here; schedule entries are not exchanged.
func (u *Usecase) ManagerApprove(ctx context.Context, actor staff.Identity, swapID uint64) error {
	return u.decide(ctx, actor, swapID, swapDomain.StatusApproved)
}

// ManagerDeny rejects an accepted swap.
func (u *Usecase) ManagerDeny(ctx context.Context, actor staff.Identity, swapID uint64) error {
	return u.decide(ctx, actor, swapID, swapDomain.StatusDenied)
}

// Withdraw deletes the caller's own swap while it is still pending.
func (u *Usecase) Withdraw(ctx context.Context, actor staff.Identity, swapID uint64) error {
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		s, err := r.Swaps.GetByIDForUpdate(ctx, swapID)
		if err != nil {
			return err
		}
		if s.Status != swapDomain.StatusPending || s.RequesterID != actor.EmployeeID {
			return swapDomain.ErrNotFound
		}
		return r.Swaps.Delete(ctx, s.ID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return swapDomain.ErrNotFound
		}
		return err
	}

	u.log.WithFields(logrus.Fields{
		"swap_id":      swapID,
		"requester_id": actor.EmployeeID,
	}).Info("shift swap withdrawn")
	return nil
}

func (u *Usecase) employeeNames(ctx context.Context) (map[uint64]string, error) {
	employees, err := u.staff.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uint64]string, len(employees))
	for _, emp := range employees {
		names[emp.ID] = emp.FullName
	}
	return names, nil
}

// ListAvailable returns pending swaps the caller may accept.
func (u *Usecase) ListAvailable(ctx context.Context, actor staff.Identity) ([]AvailableDTO, error) {
	swaps, err := u.swaps.ListAvailable(ctx, actor.EmployeeID)
	if err != nil {
		return nil, err
	}
	names, err := u.employeeNames(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]AvailableDTO, 0, len(swaps))
	for i := range swaps {
		out = append(out, AvailableDTO{
			SwapDTO:       toDTO(&swaps[i]),
			FromColleague: names[swaps[i].RequesterID],
		})
	}
	return out, nil
}

// ListOutgoing returns the caller's own proposals with status.
func (u *Usecase) ListOutgoing(ctx context.Context, actor staff.Identity) ([]OutgoingDTO, error) {
	swaps, err := u.swaps.ListOutgoing(ctx, actor.EmployeeID)
	if err != nil {
		return nil, err
	}
	names, err := u.employeeNames(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]OutgoingDTO, 0, len(swaps))
	for i := range swaps {
		dto := OutgoingDTO{SwapDTO: toDTO(&swaps[i])}
		if swaps[i].RequestedWith != nil {
			dto.WithColleague = names[*swaps[i].RequestedWith]
		}
		out = append(out, dto)
	}
	return out, nil
}

// ListAccepted returns the manager queue of swaps awaiting a decision.
func (u *Usecase) ListAccepted(ctx context.Context, actor staff.Identity) ([]AcceptedDTO, error) {
	if !actor.IsManager() {
		return nil, staff.ErrForbidden
	}

	swaps, err := u.swaps.ListAccepted(ctx)
	if err != nil {
		return nil, err
	}
	names, err := u.employeeNames(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]AcceptedDTO, 0, len(swaps))
	for i := range swaps {
		dto := AcceptedDTO{
			SwapDTO:       toDTO(&swaps[i]),
			RequesterName: names[swaps[i].RequesterID],
		}
		if swaps[i].AccepterID != nil {
			dto.AccepterName = names[*swaps[i].AccepterID]
		}
		out = append(out, dto)
	}
	return out, nil
}

// History returns the caller's most recent finished swaps, re-projected into
// their perspective. limit <= 0 uses the default of 3.
func (u *Usecase) History(ctx context.Context, actor staff.Identity, limit int) ([]HistoryDTO, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	swaps, err := u.swaps.ListFinishedInvolving(ctx, actor.EmployeeID, limit)
	if err != nil {
		return nil, err
	}
	names, err := u.employeeNames(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]HistoryDTO, 0, len(swaps))
	for i := range swaps {
		s := &swaps[i]
		h := HistoryDTO{Status: s.Status}
		if s.RequesterID == actor.EmployeeID {
			h.MyRole = "Requester"
			h.MyShift = s.RequesterShift
			h.ColleagueShift = s.RequestedShift
			if s.AccepterID != nil {
				h.ColleagueName = names[*s.AccepterID]
			}
		} else {
			h.MyRole = "Accepter"
			h.MyShift = s.RequestedShift
			h.ColleagueShift = s.RequesterShift
			h.ColleagueName = names[s.RequesterID]
		}
		out = append(out, h)
	}
	return out, nil
}
