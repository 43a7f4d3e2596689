package ledger

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"workforce-backend/internal/domain/balance"
	"workforce-backend/internal/domain/leave"
	"workforce-backend/internal/domain/staff"
	"workforce-backend/internal/domain/uow"
)

type Usecase struct {
	balances balance.Repository
	staff    staff.Repository
	uow      uow.UnitOfWork
	log      *logrus.Logger
}

func NewUsecase(balances balance.Repository, st staff.Repository, tx uow.UnitOfWork, log *logrus.Logger) *Usecase {
	return &Usecase{balances: balances, staff: st, uow: tx, log: log}
}

func toDTO(rec *balance.Record) *BalanceDTO {
	return &BalanceDTO{
		EmployeeID:       rec.EmployeeID,
		AnnualHours:      rec.AnnualHours,
		SickHours:        rec.SickHours,
		LongServiceHours: rec.LongServiceHours,
		UpdatedAt:        rec.UpdatedAt,
	}
}

// GetOrCreate returns the employee's balance, lazily inserting the default
// entitlement on first access. Managers may read anyone; employees only
// themselves.
func (u *Usecase) GetOrCreate(ctx context.Context, actor staff.Identity, employeeID uint64) (*BalanceDTO, error) {
	if !actor.IsManager() && actor.EmployeeID != employeeID {
		return nil, staff.ErrForbidden
	}

	rec, err := u.balances.GetByEmployeeID(ctx, employeeID)
	if err == nil {
		return toDTO(rec), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := u.balances.CreateIfAbsent(ctx, balance.NewRecord(employeeID)); err != nil {
		return nil, err
	}
	// re-read so a losing concurrent insert still resolves to the winning row
	rec, err = u.balances.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	u.log.WithField("employee_id", employeeID).Info("leave balance created with defaults")
	return toDTO(rec), nil
}

// Deduct subtracts hours from the field backing the leave type, inside the
// tx that owns the passed repository. Unpaid/other types are no-ops.
// The record stays untouched when the result would go negative.
func Deduct(ctx context.Context, balances balance.Repository, employeeID uint64, t leave.Type, hours float64) (*balance.Record, error) {
	if !t.Paid() {
		return nil, nil
	}

	rec, err := balances.GetByEmployeeIDForUpdate(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, balance.ErrRecordMissing
		}
		return nil, err
	}

	current, _ := rec.HoursFor(t)
	next := current - hours
	if next < 0 {
		return nil, balance.ErrInsufficientBalance
	}
	rec.SetHoursFor(t, next)
	if err := balances.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// DeductHours is the standalone form of Deduct, run as its own atomic unit.
func (u *Usecase) DeductHours(ctx context.Context, employeeID uint64, t leave.Type, hours float64) (*BalanceDTO, error) {
	var dto *BalanceDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		rec, err := Deduct(ctx, r.Balances, employeeID, t, hours)
		if err != nil {
			return err
		}
		if rec != nil {
			dto = toDTO(rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// SetAbsolute overwrites all three fields for an employee account.
func (u *Usecase) SetAbsolute(ctx context.Context, actor staff.Identity, in SetAbsoluteInput) error {
	if !actor.IsManager() {
		return staff.ErrForbidden
	}
	if in.AnnualHours < 0 || in.SickHours < 0 || in.LongServiceHours < 0 {
		return balance.ErrNegativeValue
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		emp, err := r.Staff.GetByID(ctx, in.EmployeeID)
		if err != nil {
			return err
		}
		if emp.Role != staff.RoleEmployee {
			return balance.ErrNotEmployee
		}
		return r.Balances.Upsert(ctx, &balance.Record{
			EmployeeID:       in.EmployeeID,
			AnnualHours:      in.AnnualHours,
			SickHours:        in.SickHours,
			LongServiceHours: in.LongServiceHours,
		})
	})
	if err != nil {
		return err
	}

	u.log.WithFields(logrus.Fields{
		"employee_id": in.EmployeeID,
		"annual":      in.AnnualHours,
		"sick":        in.SickHours,
	}).Info("leave balance overwritten by manager")
	return nil
}

// ListForManager returns every employee balance joined with names.
func (u *Usecase) ListForManager(ctx context.Context, actor staff.Identity) ([]EmployeeBalanceDTO, error) {
	if !actor.IsManager() {
		return nil, staff.ErrForbidden
	}

	employees, err := u.staff.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	records, err := u.balances.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[uint64]*balance.Record, len(records))
	for i := range records {
		byEmployee[records[i].EmployeeID] = &records[i]
	}

	out := make([]EmployeeBalanceDTO, 0, len(employees))
	for _, emp := range employees {
		rec, ok := byEmployee[emp.ID]
		if !ok {
			continue
		}
		out = append(out, EmployeeBalanceDTO{
			BalanceDTO: *toDTO(rec),
			Username:   emp.Username,
			FullName:   emp.FullName,
		})
	}
	return out, nil
}
