package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"workforce-backend/internal/domain/staff"
)

const (
	// Identity headers set by the gateway in front of this service.
	HeaderEmployeeID   = "Ax-Employee-Id"
	HeaderEmployeeRole = "Ax-Employee-Role"

	identityContextKey = "identity"
)

// Identity resolves the caller from the Ax-Employee-* headers and stores a
// staff.Identity in the request context. Requests without a usable identity
// are rejected with 401 before any handler runs.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			rawID := strings.TrimSpace(req.Header.Get(HeaderEmployeeID))
			if rawID == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + HeaderEmployeeID})
			}
			employeeID, err := strconv.ParseUint(rawID, 10, 64)
			if err != nil || employeeID == 0 {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid " + HeaderEmployeeID})
			}

			role := staff.Role(strings.ToLower(strings.TrimSpace(req.Header.Get(HeaderEmployeeRole))))
			if !role.Valid() {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid " + HeaderEmployeeRole})
			}

			SetIdentity(c, staff.Identity{EmployeeID: employeeID, Role: role})
			return next(c)
		}
	}
}

// SetIdentity stores the caller identity on the echo context.
func SetIdentity(c echo.Context, id staff.Identity) {
	c.Set(identityContextKey, id)
}

// IdentityFrom returns the identity stored by the Identity middleware.
func IdentityFrom(c echo.Context) (staff.Identity, bool) {
	id, ok := c.Get(identityContextKey).(staff.Identity)
	return id, ok
}
