package schedule

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	scheduleDomain "workforce-backend/internal/domain/schedule"
	"workforce-backend/internal/domain/staff"
	"workforce-backend/internal/domain/uow"
)

const dateLayout = "2006-01-02"

type Usecase struct {
	entries  scheduleDomain.EntryRepository
	patterns scheduleDomain.PatternRepository
	staff    staff.Repository
	uow      uow.UnitOfWork
	log      *logrus.Logger
}

func NewUsecase(entries scheduleDomain.EntryRepository, patterns scheduleDomain.PatternRepository, st staff.Repository, tx uow.UnitOfWork, log *logrus.Logger) *Usecase {
	return &Usecase{entries: entries, patterns: patterns, staff: st, uow: tx, log: log}
}

func entryDTO(e *scheduleDomain.Entry) EntryDTO {
	return EntryDTO{
		EmployeeID:     e.EmployeeID,
		WeekStartDate:  e.WeekStartDate,
		DayOfWeek:      e.DayOfWeek,
		ShiftStartTime: e.ShiftStartTime,
		ShiftEndTime:   e.ShiftEndTime,
		ShiftType:      e.ShiftType,
		WeekOffset:     e.WeekOffset,
	}
}

// ActivePatternWeeks returns the active cycle length, defaulting to a single
// week when no pattern is active.
func (u *Usecase) ActivePatternWeeks(ctx context.Context, employeeID uint64) (int, error) {
	p, err := u.patterns.GetActive(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 1, nil
		}
		return 0, err
	}
	return p.PatternWeeks, nil
}

// SetPattern retires all prior patterns and activates the new one in a
// single atomic unit.
func (u *Usecase) SetPattern(ctx context.Context, actor staff.Identity, employeeID uint64, weeks int) error {
	if !actor.IsManager() {
		return staff.ErrForbidden
	}
	if weeks < 1 {
		return scheduleDomain.ErrInvalidPattern
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Patterns.DeactivateAll(ctx, employeeID); err != nil {
			return err
		}
		return r.Patterns.Create(ctx, &scheduleDomain.Pattern{
			EmployeeID:   employeeID,
			PatternWeeks: weeks,
			IsActive:     true,
		})
	})
	if err != nil {
		return err
	}

	u.log.WithFields(logrus.Fields{
		"employee_id":   employeeID,
		"pattern_weeks": weeks,
	}).Info("schedule pattern set")
	return nil
}

// Expand materializes the recurring pattern from an anchor week: for each
// week offset it fetches the entries stored at anchor+offset*7d and tags
// them with the offset. Offsets with no stored rows contribute nothing.
func (u *Usecase) Expand(ctx context.Context, employeeID uint64, anchorWeekStart string) (*ExpandedDTO, error) {
	anchor, err := time.Parse(dateLayout, anchorWeekStart)
	if err != nil {
		return nil, scheduleDomain.ErrInvalidDate
	}
	weeks, err := u.ActivePatternWeeks(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	out := &ExpandedDTO{PatternWeeks: weeks, Entries: []EntryDTO{}}
	for offset := 0; offset < weeks; offset++ {
		weekStart := anchor.AddDate(0, 0, offset*7).Format(dateLayout)
		stored, err := u.entries.ListByEmployeeWeek(ctx, employeeID, weekStart)
		if err != nil {
			return nil, err
		}
		for i := range stored {
			stored[i].WeekOffset = offset
			out.Entries = append(out.Entries, entryDTO(&stored[i]))
		}
	}
	return out, nil
}

// HoursForEntry derives the worked hours of one slot: zero for leave slots
// or missing times, otherwise end-start wrapped past midnight and rounded to
// the nearest half hour.
func HoursForEntry(e scheduleDomain.Entry) float64 {
	if e.ShiftType == scheduleDomain.ShiftTypeLeave || e.ShiftStartTime == "" || e.ShiftEndTime == "" {
		return 0
	}
	start, okS := parseClock(e.ShiftStartTime)
	end, okE := parseClock(e.ShiftEndTime)
	if !okS || !okE {
		return 0
	}
	diff := end - start
	if diff < 0 {
		diff += 24
	}
	return math.Round(diff*2) / 2
}

// parseClock converts "HH:MM" into fractional hours.
func parseClock(s string) (float64, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return float64(h) + float64(m)/60, true
}

// WorkPattern summarizes the stored schedule for leave calculations.
// Managers may read anyone; employees only themselves. Absence of an active
// pattern yields an empty result, not an error.
func (u *Usecase) WorkPattern(ctx context.Context, actor staff.Identity, employeeID uint64) (*WorkPatternDTO, error) {
	if !actor.IsManager() && actor.EmployeeID != employeeID {
		return nil, staff.ErrForbidden
	}

	p, err := u.patterns.GetActive(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &WorkPatternDTO{HasPattern: false, WorkDays: []WorkDayDTO{}}, nil
		}
		return nil, err
	}

	stored, err := u.entries.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	// week offsets follow the order the weeks appear in, oldest first
	offsets := make(map[string]int)
	days := make([]WorkDayDTO, 0, len(stored))
	for i := range stored {
		e := &stored[i]
		if _, ok := offsets[e.WeekStartDate]; !ok {
			offsets[e.WeekStartDate] = len(offsets)
		}
		days = append(days, WorkDayDTO{
			DayOfWeek:  e.DayOfWeek,
			WeekOffset: offsets[e.WeekStartDate],
			ShiftType:  e.ShiftType,
			StartTime:  e.ShiftStartTime,
			EndTime:    e.ShiftEndTime,
			Hours:      HoursForEntry(*e),
		})
	}

	return &WorkPatternDTO{
		HasPattern:   true,
		PatternWeeks: p.PatternWeeks,
		WorkDays:     days,
	}, nil
}

// WeekSchedule returns every stored entry for a week date with names.
func (u *Usecase) WeekSchedule(ctx context.Context, weekStart string) ([]WeekEntryDTO, error) {
	if _, err := time.Parse(dateLayout, weekStart); err != nil {
		return nil, scheduleDomain.ErrInvalidDate
	}

	stored, err := u.entries.ListByWeek(ctx, weekStart)
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

	out := make([]WeekEntryDTO, 0, len(stored))
	for i := range stored {
		out = append(out, WeekEntryDTO{EntryDTO: entryDTO(&stored[i]), FullName: names[stored[i].EmployeeID]})
	}
	return out, nil
}

// UpsertSlot replaces one (employee, week, day) slot: delete then insert in
// one atomic unit. Empty times leave the slot cleared.
func (u *Usecase) UpsertSlot(ctx context.Context, actor staff.Identity, in UpsertSlotInput) error {
	if !actor.IsManager() {
		return staff.ErrForbidden
	}
	if _, err := time.Parse(dateLayout, in.WeekStartDate); err != nil {
		return scheduleDomain.ErrInvalidDate
	}

	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Entries.DeleteSlot(ctx, in.EmployeeID, in.WeekStartDate, in.DayOfWeek); err != nil {
			return err
		}
		if in.ShiftStartTime == "" || in.ShiftEndTime == "" {
			return nil
		}
		shiftType := in.ShiftType
		if shiftType == "" {
			shiftType = scheduleDomain.ShiftTypeRegular
		}
		return r.Entries.Create(ctx, &scheduleDomain.Entry{
			EmployeeID:     in.EmployeeID,
			WeekStartDate:  in.WeekStartDate,
			DayOfWeek:      in.DayOfWeek,
			ShiftStartTime: in.ShiftStartTime,
			ShiftEndTime:   in.ShiftEndTime,
			ShiftType:      shiftType,
		})
	})
}

// ClearSlot removes a slot outright.
func (u *Usecase) ClearSlot(ctx context.Context, actor staff.Identity, employeeID uint64, weekStart string, dayOfWeek int) error {
	if !actor.IsManager() {
		return staff.ErrForbidden
	}
	return u.entries.DeleteSlot(ctx, employeeID, weekStart, dayOfWeek)
}
