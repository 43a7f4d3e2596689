package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"workforce-backend/internal/usecase/ledger"
)

type BalanceHandler struct{ uc *ledger.Usecase }

func NewBalanceHandler(uc *ledger.Usecase) *BalanceHandler { return &BalanceHandler{uc: uc} }

func employeeIDParam(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("employee_id"), 10, 64)
	if err != nil || id == 0 {
		_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid employee_id path param"})
		return 0, false
	}
	return id, true
}

func (h *BalanceHandler) Get(c echo.Context) error {
	actor, ok := identity(c)
	if !ok {
		return nil
	}
	employeeID, ok := employeeIDParam(c)
	if !ok {
		return nil
	}
	dto, err := h.uc.GetOrCreate(c.Request().Context(), actor, employeeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BalanceHandler) List(c echo.Context) error {
	actor, ok := identity(c)
	if !ok {
		return nil
	}
	out, err := h.uc.ListForManager(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type setBalanceReq struct {
	AnnualHours      float64 `json:"annual_hours"       validate:"gte=0,halfhour"`
	SickHours        float64 `json:"sick_hours"         validate:"gte=0,halfhour"`
	LongServiceHours float64 `json:"long_service_hours" validate:"gte=0,halfhour"`
}

func (h *BalanceHandler) Set(c echo.Context) error {
	actor, ok := identity(c)
	if !ok {
		return nil
	}
	employeeID, ok := employeeIDParam(c)
	if !ok {
		return nil
	}
	var req setBalanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	err := h.uc.SetAbsolute(c.Request().Context(), actor, ledger.SetAbsoluteInput{
		EmployeeID:       employeeID,
		AnnualHours:      req.AnnualHours,
		SickHours:        req.SickHours,
		LongServiceHours: req.LongServiceHours,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}
