package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"workforce-backend/internal/usecase/swap"
)

type SwapHandler struct{ uc *swap.Usecase }

func NewSwapHandler(uc *swap.Usecase) *SwapHandler { return &SwapHandler{uc: uc} }

type proposeSwapReq struct {
	RequesterShift string  `json:"requester_shift" validate:"required"`
	RequestedShift string  `json:"requested_shift" validate:"required"`
	RequestedWith  *uint64 `json:"requested_with_id"`
}

func (h *SwapHandler) Propose(c echo.Context) error {
	actor, ok := identity(c)
	if !ok {
		return nil
	}
	var req proposeSwapReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Propose(c.Request().Context(), actor, swap.ProposeInput{
		RequesterShift: req.RequesterShift,
		RequestedShift: req.RequestedShift,
		RequestedWith:  req.RequestedWith,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func swapIDParam(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("swap_id"), 10, 64)
	if err != nil || id == 0 {
		_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid swap_id path param"})
		return 0, false
	}
	return id, true
}

// statusAction runs one of the state transitions and answers with the
// resulting status word.
func (h *SwapHandler) statusAction(c echo.Context, word string, fn func(c echo.Context, swapID uint64) error) error {
	swapID, ok := swapIDParam(c)
	if !ok {
		return nil
	}
	if err := fn(c, swapID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": word})
}

func (h *SwapHandler) Accept(c echo.Context) error {
	actor, ok := identity(c)
	if !ok {
		return nil
	}
	return h.statusAction(c, "accepted", func(c echo.Context, swapID uint64) error {
		return h.uc.Accept(c.Request().Context(), actor, swapID)
	})
}

func (h *SwapHandler) Approve(c echo.Context) error {
	actor, ok := identity(c)
	if !ok {
		return nil
	}
	return h.statusAction(c, "approved", func(c echo.Context, swapID uint64) error {
		return h.uc.ManagerApprove(c.Request().Context(), actor, swapID)
	})
}

func (h *SwapHandler) Deny(c echo.Context) error {
	actor, ok := identity(c)
	if !ok {
		return nil
	}
	return h.statusAction(c, "denied", func(c echo.Context, swapID uint64) error {
		return h.uc.ManagerDeny(c.Request().Context(), actor, swapID)
	})
}

func (h *SwapHandler) Withdraw(c echo.Context) error {
	actor, ok := identity(c)
	if !ok {
		return nil
	}
	return h.statusAction(c, "withdrawn", func(c echo.Context, swapID uint64) error {
		return h.uc.Withdraw(c.Request().Context(), actor, swapID)
	})
}

func (h *SwapHandler) ListAvailable(c echo.Context) error {
	actor, ok := identity(c)
	if !ok {
		return nil
	}
	out, err := h.uc.ListAvailable(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SwapHandler) ListOutgoing(c echo.Context) error {
	actor, ok := identity(c)
	if !ok {
		return nil
	}
	out, err := h.uc.ListOutgoing(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SwapHandler) ListAccepted(c echo.Context) error {
	actor, ok := identity(c)
	if !ok {
		return nil
	}
	out, err := h.uc.ListAccepted(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SwapHandler) History(c echo.Context) error {
	actor, ok := identity(c)
	if !ok {
		return nil
	}
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit query param"})
		}
		limit = n
	}
	out, err := h.uc.History(c.Request().Context(), actor, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
