package schedule

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	scheduleDomain "workforce-backend/internal/domain/schedule"
	"workforce-backend/internal/domain/staff"
	"workforce-backend/internal/domain/uow"
	"workforce-backend/internal/testutil/schedulemock"
	"workforce-backend/internal/testutil/staffmock"
	"workforce-backend/internal/testutil/uowmock"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

var (
	manager  = staff.Identity{EmployeeID: 1, Role: staff.RoleManager}
	employee = staff.Identity{EmployeeID: 7, Role: staff.RoleEmployee}
)

func activePattern(weeks int) *schedulemock.PatternRepo {
	return &schedulemock.PatternRepo{
		GetActiveFn: func(ctx context.Context, employeeID uint64) (*scheduleDomain.Pattern, error) {
			return &scheduleDomain.Pattern{EmployeeID: employeeID, PatternWeeks: weeks, IsActive: true}, nil
		},
	}
}

func TestHoursForEntry(t *testing.T) {
	tests := []struct {
		name  string
		entry scheduleDomain.Entry
		want  float64
	}{
		{"regular day shift", scheduleDomain.Entry{ShiftStartTime: "09:00", ShiftEndTime: "17:00", ShiftType: "regular"}, 8},
		{"overnight wraps past midnight", scheduleDomain.Entry{ShiftStartTime: "22:00", ShiftEndTime: "06:00", ShiftType: "regular"}, 8},
		{"rounded to nearest half hour", scheduleDomain.Entry{ShiftStartTime: "09:15", ShiftEndTime: "17:40", ShiftType: "regular"}, 8.5},
		{"leave slot counts zero", scheduleDomain.Entry{ShiftStartTime: "09:00", ShiftEndTime: "17:00", ShiftType: "leave"}, 0},
		{"missing times count zero", scheduleDomain.Entry{ShiftType: "regular"}, 0},
		{"garbage times count zero", scheduleDomain.Entry{ShiftStartTime: "9am", ShiftEndTime: "5pm", ShiftType: "regular"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HoursForEntry(tt.entry); got != tt.want {
				t.Fatalf("HoursForEntry = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestActivePatternWeeks_DefaultsToOne(t *testing.T) {
	uc := NewUsecase(&schedulemock.EntryRepo{}, &schedulemock.PatternRepo{}, &staffmock.Repo{}, uowmock.New(), quietLogger())
	weeks, err := uc.ActivePatternWeeks(context.Background(), 7)
	if err != nil {
		t.Fatalf("ActivePatternWeeks: %v", err)
	}
	if weeks != 1 {
		t.Fatalf("weeks = %d, want 1", weeks)
	}
}

func TestExpand_SparseOffsets(t *testing.T) {
	// pattern of 3 weeks anchored at 2024-01-01 with entries stored only at
	// offsets 0 and 2; offset 1 contributes nothing
	stored := map[string][]scheduleDomain.Entry{
		"2024-01-01": {{EmployeeID: 7, WeekStartDate: "2024-01-01", DayOfWeek: 1, ShiftStartTime: "09:00", ShiftEndTime: "17:00"}},
		"2024-01-15": {{EmployeeID: 7, WeekStartDate: "2024-01-15", DayOfWeek: 3, ShiftStartTime: "09:00", ShiftEndTime: "17:00"}},
	}
	entries := &schedulemock.EntryRepo{
		ListByEmployeeWeekFn: func(ctx context.Context, employeeID uint64, weekStart string) ([]scheduleDomain.Entry, error) {
			return stored[weekStart], nil
		},
	}
	uc := NewUsecase(entries, activePattern(3), &staffmock.Repo{}, uowmock.New(), quietLogger())

	out, err := uc.Expand(context.Background(), 7, "2024-01-01")
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if out.PatternWeeks != 3 {
		t.Fatalf("pattern weeks = %d, want 3", out.PatternWeeks)
	}
	if len(out.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(out.Entries))
	}
	if out.Entries[0].WeekOffset != 0 || out.Entries[0].WeekStartDate != "2024-01-01" {
		t.Fatalf("first entry wrong: %+v", out.Entries[0])
	}
	if out.Entries[1].WeekOffset != 2 || out.Entries[1].WeekStartDate != "2024-01-15" {
		t.Fatalf("second entry wrong: %+v", out.Entries[1])
	}
}

func TestExpand_BadAnchor(t *testing.T) {
	uc := NewUsecase(&schedulemock.EntryRepo{}, activePattern(1), &staffmock.Repo{}, uowmock.New(), quietLogger())
	if _, err := uc.Expand(context.Background(), 7, "01/01/2024"); !errors.Is(err, scheduleDomain.ErrInvalidDate) {
		t.Fatalf("want ErrInvalidDate, got %v", err)
	}
}

func TestWorkPattern(t *testing.T) {
	t.Run("no active pattern is a valid empty result", func(t *testing.T) {
		uc := NewUsecase(&schedulemock.EntryRepo{}, &schedulemock.PatternRepo{}, &staffmock.Repo{}, uowmock.New(), quietLogger())
		out, err := uc.WorkPattern(context.Background(), employee, 7)
		if err != nil {
			t.Fatalf("WorkPattern: %v", err)
		}
		if out.HasPattern || len(out.WorkDays) != 0 {
			t.Fatalf("expected soft-empty result, got %+v", out)
		}
	})

	t.Run("derives hours and week offsets", func(t *testing.T) {
		entries := &schedulemock.EntryRepo{
			ListByEmployeeFn: func(ctx context.Context, employeeID uint64) ([]scheduleDomain.Entry, error) {
				return []scheduleDomain.Entry{
					{WeekStartDate: "2024-01-01", DayOfWeek: 1, ShiftStartTime: "09:00", ShiftEndTime: "17:00", ShiftType: "regular"},
					{WeekStartDate: "2024-01-01", DayOfWeek: 2, ShiftType: "leave", ShiftStartTime: "09:00", ShiftEndTime: "17:00"},
					{WeekStartDate: "2024-01-08", DayOfWeek: 1, ShiftStartTime: "22:00", ShiftEndTime: "06:00", ShiftType: "regular"},
				}, nil
			},
		}
		uc := NewUsecase(entries, activePattern(2), &staffmock.Repo{}, uowmock.New(), quietLogger())

		out, err := uc.WorkPattern(context.Background(), employee, 7)
		if err != nil {
			t.Fatalf("WorkPattern: %v", err)
		}
		if !out.HasPattern || out.PatternWeeks != 2 || len(out.WorkDays) != 3 {
			t.Fatalf("unexpected result: %+v", out)
		}
		if out.WorkDays[0].Hours != 8 || out.WorkDays[0].WeekOffset != 0 {
			t.Fatalf("day 0 wrong: %+v", out.WorkDays[0])
		}
		if out.WorkDays[1].Hours != 0 {
			t.Fatalf("leave day should count zero hours: %+v", out.WorkDays[1])
		}
		if out.WorkDays[2].Hours != 8 || out.WorkDays[2].WeekOffset != 1 {
			t.Fatalf("overnight day wrong: %+v", out.WorkDays[2])
		}
	})

	t.Run("employees cannot read another pattern", func(t *testing.T) {
		uc := NewUsecase(&schedulemock.EntryRepo{}, &schedulemock.PatternRepo{}, &staffmock.Repo{}, uowmock.New(), quietLogger())
		if _, err := uc.WorkPattern(context.Background(), employee, 8); !errors.Is(err, staff.ErrForbidden) {
			t.Fatalf("want ErrForbidden, got %v", err)
		}
	})
}

func TestSetPattern(t *testing.T) {
	t.Run("deactivates old patterns then inserts active", func(t *testing.T) {
		order := []string{}
		patterns := &schedulemock.PatternRepo{
			DeactivateAllFn: func(ctx context.Context, employeeID uint64) error {
				order = append(order, "deactivate")
				return nil
			},
			CreateFn: func(ctx context.Context, p *scheduleDomain.Pattern) error {
				order = append(order, "create")
				if !p.IsActive || p.PatternWeeks != 3 {
					t.Fatalf("unexpected pattern: %+v", p)
				}
				return nil
			},
		}
		uc := NewUsecase(&schedulemock.EntryRepo{}, patterns, &staffmock.Repo{}, uowmock.Passthrough(uow.Repos{Patterns: patterns}), quietLogger())
		if err := uc.SetPattern(context.Background(), manager, 7, 3); err != nil {
			t.Fatalf("SetPattern: %v", err)
		}
		if len(order) != 2 || order[0] != "deactivate" || order[1] != "create" {
			t.Fatalf("wrong op order: %v", order)
		}
	})

	t.Run("rejects weeks below one", func(t *testing.T) {
		uc := NewUsecase(&schedulemock.EntryRepo{}, &schedulemock.PatternRepo{}, &staffmock.Repo{}, uowmock.New(), quietLogger())
		if err := uc.SetPattern(context.Background(), manager, 7, 0); !errors.Is(err, scheduleDomain.ErrInvalidPattern) {
			t.Fatalf("want ErrInvalidPattern, got %v", err)
		}
	})

	t.Run("forbidden for employees", func(t *testing.T) {
		uc := NewUsecase(&schedulemock.EntryRepo{}, &schedulemock.PatternRepo{}, &staffmock.Repo{}, uowmock.New(), quietLogger())
		if err := uc.SetPattern(context.Background(), employee, 7, 2); !errors.Is(err, staff.ErrForbidden) {
			t.Fatalf("want ErrForbidden, got %v", err)
		}
	})
}

func TestUpsertSlot(t *testing.T) {
	t.Run("delete then insert", func(t *testing.T) {
		order := []string{}
		entries := &schedulemock.EntryRepo{
			DeleteSlotFn: func(ctx context.Context, employeeID uint64, weekStart string, dayOfWeek int) error {
				order = append(order, "delete")
				return nil
			},
			CreateFn: func(ctx context.Context, e *scheduleDomain.Entry) error {
				order = append(order, "create")
				if e.ShiftType != scheduleDomain.ShiftTypeRegular {
					t.Fatalf("shift type should default to regular, got %q", e.ShiftType)
				}
				return nil
			},
		}
		uc := NewUsecase(entries, &schedulemock.PatternRepo{}, &staffmock.Repo{}, uowmock.Passthrough(uow.Repos{Entries: entries}), quietLogger())
		err := uc.UpsertSlot(context.Background(), manager, UpsertSlotInput{
			EmployeeID:     7,
			WeekStartDate:  "2024-01-01",
			DayOfWeek:      1,
			ShiftStartTime: "09:00",
			ShiftEndTime:   "17:00",
		})
		if err != nil {
			t.Fatalf("UpsertSlot: %v", err)
		}
		if len(order) != 2 || order[0] != "delete" || order[1] != "create" {
			t.Fatalf("wrong op order: %v", order)
		}
	})

	t.Run("empty times just clear the slot", func(t *testing.T) {
		entries := &schedulemock.EntryRepo{
			CreateFn: func(context.Context, *scheduleDomain.Entry) error {
				t.Fatalf("must not insert when times are empty")
				return nil
			},
		}
		uc := NewUsecase(entries, &schedulemock.PatternRepo{}, &staffmock.Repo{}, uowmock.Passthrough(uow.Repos{Entries: entries}), quietLogger())
		err := uc.UpsertSlot(context.Background(), manager, UpsertSlotInput{
			EmployeeID:    7,
			WeekStartDate: "2024-01-01",
			DayOfWeek:     1,
		})
		if err != nil {
			t.Fatalf("UpsertSlot: %v", err)
		}
	})

	t.Run("forbidden for employees", func(t *testing.T) {
		uc := NewUsecase(&schedulemock.EntryRepo{}, &schedulemock.PatternRepo{}, &staffmock.Repo{}, uowmock.New(), quietLogger())
		err := uc.UpsertSlot(context.Background(), employee, UpsertSlotInput{EmployeeID: 7, WeekStartDate: "2024-01-01"})
		if !errors.Is(err, staff.ErrForbidden) {
			t.Fatalf("want ErrForbidden, got %v", err)
		}
	})
}
