package mysql

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	balanceDomain "workforce-backend/internal/domain/balance"
	leaveDomain "workforce-backend/internal/domain/leave"
	"workforce-backend/internal/domain/staff"
	"workforce-backend/internal/domain/uow"
	leaveUsecase "workforce-backend/internal/usecase/leave"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openUowTestDB migrates every table, so the UoW can orchestrate all repos.
func openUowTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&employeeSQLite{},
		&balanceDomain.Record{},
		&leaveRequestSQLite{},
		&swapSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// ----------------------------- Tests -----------------------------

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	leaveRepo := NewLeaveRepository(db)
	balRepo := NewBalanceRepository(db)

	var requestID uint64
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		req := makeLeaveRequest(7, 40)
		if err := r.Leaves.Create(ctx, req); err != nil {
			return err
		}
		if req.ID == 0 {
			t.Fatalf("request auto ID not set")
		}
		requestID = req.ID
		return r.Balances.CreateIfAbsent(ctx, balanceDomain.NewRecord(7))
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	// Verify post-commit visibility
	if _, err := leaveRepo.GetByID(ctx, requestID); err != nil {
		t.Fatalf("request not visible after commit: %v", err)
	}
	if _, err := balRepo.GetByEmployeeID(ctx, 7); err != nil {
		t.Fatalf("balance not visible after commit: %v", err)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	leaveRepo := NewLeaveRepository(db)
	balRepo := NewBalanceRepository(db)

	sentinel := errors.New("boom")

	var requestID uint64
	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		req := makeLeaveRequest(7, 40)
		if err := r.Leaves.Create(ctx, req); err != nil {
			return err
		}
		requestID = req.ID
		if err := r.Balances.CreateIfAbsent(ctx, balanceDomain.NewRecord(7)); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	// None should exist after rollback
	if _, err := leaveRepo.GetByID(ctx, requestID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected request not found after rollback, got %v", err)
	}
	if _, err := balRepo.GetByEmployeeID(ctx, 7); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected balance not found after rollback, got %v", err)
	}
}

func TestGormUoW_WithinLeaveTx_Commit(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	leaveRepo := NewLeaveRepository(db)
	balRepo := NewBalanceRepository(db)

	// Seed outside the tx: a default balance and a pending request.
	if err := balRepo.CreateIfAbsent(ctx, balanceDomain.NewRecord(7)); err != nil {
		t.Fatalf("seed balance: %v", err)
	}
	target := makeLeaveRequest(7, 16)
	if err := leaveRepo.Create(ctx, target); err != nil {
		t.Fatalf("seed request: %v", err)
	}

	// WithinLeaveTx fetches the locked request and passes it to fn.
	if err := guow.WithinLeaveTx(ctx, target.ID, func(r uow.Repos, req *leaveDomain.Request) error {
		if req == nil || req.ID != target.ID || req.Status != leaveDomain.StatusPending {
			t.Fatalf("unexpected request passed to fn: %+v", req)
		}

		rec, err := r.Balances.GetByEmployeeIDForUpdate(ctx, 7)
		if err != nil {
			return err
		}
		rec.AnnualHours -= req.HoursRequested
		if err := r.Balances.Save(ctx, rec); err != nil {
			return err
		}

		now := time.Now().UTC()
		req.Status = leaveDomain.StatusApproved
		req.ApprovedAt = &now
		return r.Leaves.Save(ctx, req)
	}); err != nil {
		t.Fatalf("WithinLeaveTx commit err: %v", err)
	}

	// Verify changes
	gotReq, err := leaveRepo.GetByID(ctx, target.ID)
	if err != nil {
		t.Fatalf("GetByID post-commit: %v", err)
	}
	if gotReq.Status != leaveDomain.StatusApproved {
		t.Fatalf("request status not updated, got=%s", gotReq.Status)
	}
	gotBal, err := balRepo.GetByEmployeeID(ctx, 7)
	if err != nil {
		t.Fatalf("balance post-commit: %v", err)
	}
	if gotBal.AnnualHours != balanceDomain.DefaultAnnualHours-16 {
		t.Fatalf("balance not deducted, got=%v", gotBal.AnnualHours)
	}
}

func TestGormUoW_WithinLeaveTx_Rollback(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	leaveRepo := NewLeaveRepository(db)
	balRepo := NewBalanceRepository(db)

	if err := balRepo.CreateIfAbsent(ctx, balanceDomain.NewRecord(7)); err != nil {
		t.Fatalf("seed balance: %v", err)
	}
	target := makeLeaveRequest(7, 16)
	if err := leaveRepo.Create(ctx, target); err != nil {
		t.Fatalf("seed request: %v", err)
	}

	sentinel := errors.New("stop")

	_ = guow.WithinLeaveTx(ctx, target.ID, func(r uow.Repos, req *leaveDomain.Request) error {
		rec, err := r.Balances.GetByEmployeeIDForUpdate(ctx, 7)
		if err != nil {
			return err
		}
		rec.AnnualHours = 0
		if err := r.Balances.Save(ctx, rec); err != nil {
			return err
		}
		req.Status = leaveDomain.StatusApproved
		if err := r.Leaves.Save(ctx, req); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	// After rollback: status and balance unchanged.
	gotReq, err := leaveRepo.GetByID(ctx, target.ID)
	if err != nil {
		t.Fatalf("post-rollback GetByID: %v", err)
	}
	if gotReq.Status != leaveDomain.StatusPending {
		t.Fatalf("expected pending after rollback, got %s", gotReq.Status)
	}
	gotBal, err := balRepo.GetByEmployeeID(ctx, 7)
	if err != nil {
		t.Fatalf("post-rollback balance: %v", err)
	}
	if gotBal.AnnualHours != balanceDomain.DefaultAnnualHours {
		t.Fatalf("expected balance untouched after rollback, got %v", gotBal.AnnualHours)
	}
}

func TestGormUoW_WithinLeaveTx_RequestNotFound(t *testing.T) {
	db := openUowTestDB(t)

	guow := NewGormUoW(db)

	err := guow.WithinLeaveTx(context.Background(), 9999, func(r uow.Repos, req *leaveDomain.Request) error {
		t.Fatalf("callback should not run when request missing")
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

// End-to-end approval against real storage: the second approval overdraws the
// ledger and must leave both the balance and the request exactly as they were.
func TestApproveAgainstStorage_InsufficientBalanceRollsBack(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	leaveRepo := NewLeaveRepository(db)
	balRepo := NewBalanceRepository(db)
	staffRepo := NewStaffRepository(db)
	uc := leaveUsecase.NewUsecase(leaveRepo, staffRepo, NewGormUoW(db), discardLogger())

	manager := staff.Identity{EmployeeID: 1, Role: staff.RoleManager}

	if err := balRepo.CreateIfAbsent(ctx, balanceDomain.NewRecord(7)); err != nil {
		t.Fatalf("seed balance: %v", err)
	}
	first := makeLeaveRequest(7, 40)
	second := makeLeaveRequest(7, 50)
	for _, req := range []*leaveDomain.Request{first, second} {
		if err := leaveRepo.Create(ctx, req); err != nil {
			t.Fatalf("seed request: %v", err)
		}
	}

	// 80 available, 40 requested: approves and deducts.
	dto, err := uc.Approve(ctx, manager, first.ID)
	if err != nil {
		t.Fatalf("first Approve: %v", err)
	}
	if dto.HoursDeducted != 40 {
		t.Fatalf("want 40 deducted, got %v", dto.HoursDeducted)
	}
	bal, err := balRepo.GetByEmployeeID(ctx, 7)
	if err != nil {
		t.Fatalf("balance after first approval: %v", err)
	}
	if bal.AnnualHours != 40 {
		t.Fatalf("want 40 annual hours left, got %v", bal.AnnualHours)
	}

	// 40 available, 50 requested: rejected, nothing mutated.
	if _, err := uc.Approve(ctx, manager, second.ID); !errors.Is(err, balanceDomain.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	bal, err = balRepo.GetByEmployeeID(ctx, 7)
	if err != nil {
		t.Fatalf("balance after failed approval: %v", err)
	}
	if bal.AnnualHours != 40 {
		t.Fatalf("failed approval mutated balance: %v", bal.AnnualHours)
	}
	gotSecond, err := leaveRepo.GetByID(ctx, second.ID)
	if err != nil {
		t.Fatalf("second request reload: %v", err)
	}
	if gotSecond.Status != leaveDomain.StatusPending {
		t.Fatalf("second request should stay pending, got %s", gotSecond.Status)
	}

	// The approved request cannot be re-processed.
	if _, err := uc.Approve(ctx, manager, first.ID); !errors.Is(err, leaveDomain.ErrAlreadyProcessed) {
		t.Fatalf("expected ErrAlreadyProcessed, got %v", err)
	}
}
