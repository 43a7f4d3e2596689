package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"workforce-backend/internal/usecase/leave"
)

type LeaveHandler struct{ uc *leave.Usecase }

func NewLeaveHandler(uc *leave.Usecase) *LeaveHandler { return &LeaveHandler{uc: uc} }

type submitLeaveReq struct {
	LeaveType string  `json:"leave_type" validate:"required,leavetype"`
	StartDate string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string  `json:"end_date"   validate:"required,datetime=2006-01-02"`
	Hours     float64 `json:"hours_requested" validate:"required,gt=0,halfhour"`
	Comments  string  `json:"comments"`
}

func (h *LeaveHandler) Submit(c echo.Context) error {
	actor, ok := identity(c)
	if !ok {
		return nil
	}
	var req submitLeaveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Submit(c.Request().Context(), actor, leave.SubmitInput{
		LeaveType: req.LeaveType,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Hours:     req.Hours,
		Comments:  req.Comments,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func requestIDParam(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("request_id"), 10, 64)
	if err != nil || id == 0 {
		_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request_id path param"})
		return 0, false
	}
	return id, true
}

func (h *LeaveHandler) Approve(c echo.Context) error {
	actor, ok := identity(c)
	if !ok {
		return nil
	}
	requestID, ok := requestIDParam(c)
	if !ok {
		return nil
	}
	dto, err := h.uc.Approve(c.Request().Context(), actor, requestID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LeaveHandler) Deny(c echo.Context) error {
	actor, ok := identity(c)
	if !ok {
		return nil
	}
	requestID, ok := requestIDParam(c)
	if !ok {
		return nil
	}
	if err := h.uc.Deny(c.Request().Context(), actor, requestID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "denied"})
}

func (h *LeaveHandler) ListPending(c echo.Context) error {
	actor, ok := identity(c)
	if !ok {
		return nil
	}
	out, err := h.uc.ListPending(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LeaveHandler) ListHistory(c echo.Context) error {
	actor, ok := identity(c)
	if !ok {
		return nil
	}
	out, err := h.uc.ListHistory(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
