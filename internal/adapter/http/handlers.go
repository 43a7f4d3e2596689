package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"workforce-backend/internal/adapter/middleware"
	"workforce-backend/internal/domain/balance"
	"workforce-backend/internal/domain/leave"
	"workforce-backend/internal/domain/schedule"
	"workforce-backend/internal/domain/staff"
	"workforce-backend/internal/domain/swap"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// identity pulls the caller stored by the identity middleware; a missing
// identity means the route was wired without it. The 401 is written before
// returning, so callers just stop on !ok.
func identity(c echo.Context) (staff.Identity, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		_ = c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "caller identity missing"})
		return staff.Identity{}, false
	}
	return id, true
}

// respondError maps domain sentinels to HTTP codes; anything unrecognized is
// a 500 with the detail kept out of the response.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, staff.ErrForbidden), errors.Is(err, swap.ErrSelfAccept):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, staff.ErrNotFound),
		errors.Is(err, leave.ErrNotFound),
		errors.Is(err, swap.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, leave.ErrAlreadyProcessed),
		errors.Is(err, balance.ErrInsufficientBalance),
		errors.Is(err, balance.ErrRecordMissing):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, leave.ErrMissingField),
		errors.Is(err, leave.ErrInvalidHours),
		errors.Is(err, balance.ErrNegativeValue),
		errors.Is(err, balance.ErrNotEmployee),
		errors.Is(err, swap.ErrMissingShift),
		errors.Is(err, schedule.ErrInvalidDate),
		errors.Is(err, schedule.ErrInvalidPattern):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
