package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	scheduleDomain "workforce-backend/internal/domain/schedule"
	"workforce-backend/internal/domain/uow"
	"workforce-backend/internal/testutil/schedulemock"
	"workforce-backend/internal/testutil/staffmock"
	"workforce-backend/internal/testutil/uowmock"
	ucSchedule "workforce-backend/internal/usecase/schedule"
)

func scheduleFixture(entries *schedulemock.EntryRepo, patterns *schedulemock.PatternRepo) *ucSchedule.Usecase {
	tx := uowmock.Passthrough(uow.Repos{Entries: entries, Patterns: patterns})
	return ucSchedule.NewUsecase(entries, patterns, &staffmock.Repo{}, tx, quietLogger())
}

func TestWorkPattern_SoftEmpty(t *testing.T) {
	e := newEchoWithValidator()
	h := NewScheduleHandler(scheduleFixture(&schedulemock.EntryRepo{}, &schedulemock.PatternRepo{}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/schedules/7/work-pattern", nil)
	c, rec := newCtx(e, req, asEmployee)
	c.SetParamNames("employee_id")
	c.SetParamValues("7")

	if err := h.WorkPattern(c); err != nil {
		t.Fatalf("WorkPattern error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	var dto ucSchedule.WorkPatternDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if dto.HasPattern || len(dto.WorkDays) != 0 {
		t.Fatalf("expected empty pattern, got %+v", dto)
	}
}

func TestUpsertSlot_ValidatesClockTimes(t *testing.T) {
	e := newEchoWithValidator()
	h := NewScheduleHandler(scheduleFixture(&schedulemock.EntryRepo{}, &schedulemock.PatternRepo{}))

	body := map[string]any{
		"week_start_date":  "2024-01-01",
		"day_of_week":      1,
		"shift_start_time": "9am",
		"shift_end_time":   "17:00",
	}
	req := httptest.NewRequest(stdhttp.MethodPut, "/schedules/7/slots", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newCtx(e, req, asManager)
	c.SetParamNames("employee_id")
	c.SetParamValues("7")

	if err := h.UpsertSlot(c); err != nil {
		t.Fatalf("UpsertSlot error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if !containsFieldMsg(er.Details, "ShiftStartTime", "24h clock time") {
		t.Fatalf("missing hhmm detail: %+v", er.Details)
	}
}

func TestUpsertSlot_Success(t *testing.T) {
	e := newEchoWithValidator()

	var inserted *scheduleDomain.Entry
	entries := &schedulemock.EntryRepo{
		CreateFn: func(ctx context.Context, entry *scheduleDomain.Entry) error {
			inserted = entry
			return nil
		},
	}
	h := NewScheduleHandler(scheduleFixture(entries, &schedulemock.PatternRepo{}))

	body := map[string]any{
		"week_start_date":  "2024-01-01",
		"day_of_week":      1,
		"shift_start_time": "09:00",
		"shift_end_time":   "17:00",
	}
	req := httptest.NewRequest(stdhttp.MethodPut, "/schedules/7/slots", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newCtx(e, req, asManager)
	c.SetParamNames("employee_id")
	c.SetParamValues("7")

	if err := h.UpsertSlot(c); err != nil {
		t.Fatalf("UpsertSlot error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	if inserted == nil || inserted.EmployeeID != 7 || inserted.ShiftType != scheduleDomain.ShiftTypeRegular {
		t.Fatalf("unexpected insert: %+v", inserted)
	}
}

func TestSetPattern_EmployeeForbidden(t *testing.T) {
	e := newEchoWithValidator()
	h := NewScheduleHandler(scheduleFixture(&schedulemock.EntryRepo{}, &schedulemock.PatternRepo{}))

	req := httptest.NewRequest(stdhttp.MethodPut, "/schedules/7/pattern", mustJSON(map[string]any{"pattern_weeks": 2}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newCtx(e, req, asEmployee)
	c.SetParamNames("employee_id")
	c.SetParamValues("7")

	if err := h.SetPattern(c); err != nil {
		t.Fatalf("SetPattern error: %v", err)
	}
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestClearSlot_BadQuery(t *testing.T) {
	e := newEchoWithValidator()
	h := NewScheduleHandler(scheduleFixture(&schedulemock.EntryRepo{}, &schedulemock.PatternRepo{}))

	req := httptest.NewRequest(stdhttp.MethodDelete, "/schedules/7/slots?week_start=2024-01-01&day_of_week=9", nil)
	c, rec := newCtx(e, req, asManager)
	c.SetParamNames("employee_id")
	c.SetParamValues("7")

	if err := h.ClearSlot(c); err != nil {
		t.Fatalf("ClearSlot error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestExpanded_BadAnchor(t *testing.T) {
	e := newEchoWithValidator()
	h := NewScheduleHandler(scheduleFixture(&schedulemock.EntryRepo{}, &schedulemock.PatternRepo{}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/schedules/7/expanded?week_start=bogus", nil)
	c, rec := newCtx(e, req, asEmployee)
	c.SetParamNames("employee_id")
	c.SetParamValues("7")

	if err := h.Expanded(c); err != nil {
		t.Fatalf("Expanded error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
