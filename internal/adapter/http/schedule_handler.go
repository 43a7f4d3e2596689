package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"workforce-backend/internal/usecase/schedule"
)

type ScheduleHandler struct{ uc *schedule.Usecase }

func NewScheduleHandler(uc *schedule.Usecase) *ScheduleHandler { return &ScheduleHandler{uc: uc} }

func (h *ScheduleHandler) Week(c echo.Context) error {
	if _, ok := identity(c); !ok {
		return nil
	}
	out, err := h.uc.WeekSchedule(c.Request().Context(), c.Param("week_start"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ScheduleHandler) Expanded(c echo.Context) error {
	if _, ok := identity(c); !ok {
		return nil
	}
	employeeID, ok := employeeIDParam(c)
	if !ok {
		return nil
	}
	out, err := h.uc.Expand(c.Request().Context(), employeeID, c.QueryParam("week_start"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ScheduleHandler) WorkPattern(c echo.Context) error {
	actor, ok := identity(c)
	if !ok {
		return nil
	}
	employeeID, ok := employeeIDParam(c)
	if !ok {
		return nil
	}
	out, err := h.uc.WorkPattern(c.Request().Context(), actor, employeeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type setPatternReq struct {
	PatternWeeks int `json:"pattern_weeks" validate:"required,gte=1,lte=8"`
}

func (h *ScheduleHandler) SetPattern(c echo.Context) error {
	actor, ok := identity(c)
	if !ok {
		return nil
	}
	employeeID, ok := employeeIDParam(c)
	if !ok {
		return nil
	}
	var req setPatternReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if err := h.uc.SetPattern(c.Request().Context(), actor, employeeID, req.PatternWeeks); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

type upsertSlotReq struct {
	WeekStartDate  string `json:"week_start_date"  validate:"required,datetime=2006-01-02"`
	DayOfWeek      int    `json:"day_of_week"      validate:"gte=0,lte=6"`
	ShiftStartTime string `json:"shift_start_time" validate:"omitempty,hhmm"`
	ShiftEndTime   string `json:"shift_end_time"   validate:"omitempty,hhmm"`
	ShiftType      string `json:"shift_type"`
}

func (h *ScheduleHandler) UpsertSlot(c echo.Context) error {
	actor, ok := identity(c)
	if !ok {
		return nil
	}
	employeeID, ok := employeeIDParam(c)
	if !ok {
		return nil
	}
	var req upsertSlotReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	err := h.uc.UpsertSlot(c.Request().Context(), actor, schedule.UpsertSlotInput{
		EmployeeID:     employeeID,
		WeekStartDate:  req.WeekStartDate,
		DayOfWeek:      req.DayOfWeek,
		ShiftStartTime: req.ShiftStartTime,
		ShiftEndTime:   req.ShiftEndTime,
		ShiftType:      req.ShiftType,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

func (h *ScheduleHandler) ClearSlot(c echo.Context) error {
	actor, ok := identity(c)
	if !ok {
		return nil
	}
	employeeID, ok := employeeIDParam(c)
	if !ok {
		return nil
	}
	weekStart := c.QueryParam("week_start")
	day, err := strconv.Atoi(c.QueryParam("day_of_week"))
	if err != nil || day < 0 || day > 6 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid day_of_week query param"})
	}
	if err := h.uc.ClearSlot(c.Request().Context(), actor, employeeID, weekStart, day); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "cleared"})
}
