package leave

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	leaveDomain "workforce-backend/internal/domain/leave"
	"workforce-backend/internal/domain/staff"
	"workforce-backend/internal/domain/uow"
	"workforce-backend/internal/usecase/ledger"
)

type Usecase struct {
	leaves leaveDomain.Repository
	staff  staff.Repository
	uow    uow.UnitOfWork
	log    *logrus.Logger
}

func NewUsecase(leaves leaveDomain.Repository, st staff.Repository, tx uow.UnitOfWork, log *logrus.Logger) *Usecase {
	return &Usecase{leaves: leaves, staff: st, uow: tx, log: log}
}

func toDTO(r *leaveDomain.Request) RequestDTO {
	return RequestDTO{
		ID:             r.ID,
		EmployeeID:     r.EmployeeID,
		LeaveType:      r.Type,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		HoursRequested: r.HoursRequested,
		Comments:       r.Comments,
		Status:         r.Status,
		RequestedAt:    r.RequestedAt,
		ApprovedAt:     r.ApprovedAt,
	}
}

// Submit creates a pending request for the calling employee.
func (u *Usecase) Submit(ctx context.Context, actor staff.Identity, in SubmitInput) (*RequestDTO, error) {
	t := leaveDomain.Type(in.LeaveType)
	if in.LeaveType == "" || in.StartDate == "" || in.EndDate == "" || !t.Valid() {
		return nil, leaveDomain.ErrMissingField
	}
	if in.Hours <= 0 {
		return nil, leaveDomain.ErrInvalidHours
	}

	req := &leaveDomain.Request{
		EmployeeID:     actor.EmployeeID,
		Type:           t,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		HoursRequested: in.Hours,
		Comments:       in.Comments,
		Status:         leaveDomain.StatusPending,
	}
	if err := u.leaves.Create(ctx, req); err != nil {
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"request_id":  req.ID,
		"employee_id": actor.EmployeeID,
		"leave_type":  t,
		"hours":       in.Hours,
	}).Info("leave request submitted")
	dto := toDTO(req)
	return &dto, nil
}

// Approve transitions pending -> approved and deducts the requested hours
// from the ledger as one atomic unit. If the balance is insufficient the
// whole unit rolls back and the request stays pending.
func (u *Usecase) Approve(ctx context.Context, actor staff.Identity, requestID uint64) (*ApprovalDTO, error) {
	if !actor.IsManager() {
		return nil, staff.ErrForbidden
	}

	var dto *ApprovalDTO
	err := u.uow.WithinLeaveTx(ctx, requestID, func(r uow.Repos, req *leaveDomain.Request) error {
		if req.Terminal() {
			return leaveDomain.ErrAlreadyProcessed
		}

		if _, err := ledger.Deduct(ctx, r.Balances, req.EmployeeID, req.Type, req.HoursRequested); err != nil {
			return err
		}

		now := time.Now().UTC()
		req.Status = leaveDomain.StatusApproved
		req.ApprovedAt = &now
		if err := r.Leaves.Save(ctx, req); err != nil {
			return err
		}

		deducted := 0.0
		if req.Type.Paid() {
			deducted = req.HoursRequested
		}
		dto = &ApprovalDTO{
			RequestID:     req.ID,
			LeaveType:     req.Type,
			HoursDeducted: deducted,
			ApprovedAt:    now,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveDomain.ErrNotFound
		}
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"manager_id": actor.EmployeeID,
		"deducted":   dto.HoursDeducted,
	}).Info("leave request approved")
	return dto, nil
}

// Deny transitions pending -> denied. Terminal requests are rejected rather
// than silently re-denied, so double submissions surface.
func (u *Usecase) Deny(ctx context.Context, actor staff.Identity, requestID uint64) error {
	if !actor.IsManager() {
		return staff.ErrForbidden
	}

	err := u.uow.WithinLeaveTx(ctx, requestID, func(r uow.Repos, req *leaveDomain.Request) error {
		if req.Terminal() {
			return leaveDomain.ErrAlreadyProcessed
		}
		req.Status = leaveDomain.StatusDenied
		return r.Leaves.Save(ctx, req)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leaveDomain.ErrNotFound
		}
		return err
	}

	u.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"manager_id": actor.EmployeeID,
	}).Info("leave request denied")
	return nil
}

// ListPending returns the manager approval queue, oldest first, with names.
func (u *Usecase) ListPending(ctx context.Context, actor staff.Identity) ([]PendingDTO, error) {
	if !actor.IsManager() {
		return nil, staff.ErrForbidden
	}

	reqs, err := u.leaves.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := u.staff.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uint64]string, len(employees))
	for _, emp := range employees {
		names[emp.ID] = emp.FullName
	}

	out := make([]PendingDTO, 0, len(reqs))
	for i := range reqs {
		out = append(out, PendingDTO{RequestDTO: toDTO(&reqs[i]), FullName: names[reqs[i].EmployeeID]})
	}
	return out, nil
}

// ListHistory returns the caller's own requests, most recent first.
func (u *Usecase) ListHistory(ctx context.Context, actor staff.Identity) ([]RequestDTO, error) {
	reqs, err := u.leaves.ListByEmployee(ctx, actor.EmployeeID)
	if err != nil {
		return nil, err
	}
	out := make([]RequestDTO, 0, len(reqs))
	for i := range reqs {
		out = append(out, toDTO(&reqs[i]))
	}
	return out, nil
}
