package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ActiveAdminFunc checks whether the admin id is an ACTIVE row in the admins
// table. Satisfied directly by repository.AdminRepo.IsActive.
type ActiveAdminFunc func(ctx context.Context, adminID uint64) (bool, error)

// RequireActiveAdmin enforces that the authenticated identity maps to an
// ACTIVE admin record. The check hits the DB on every request rather than
// trusting the token, so deactivating an account takes effect immediately.
// Assumes JWTAuth ran first and stored "admin_id" in the context.
func RequireActiveAdmin(isActive ActiveAdminFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := AdminID(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}
			ok, err := isActive(c.Request().Context(), id)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "auth check failed"})
			}
			if !ok {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// AdminID extracts the admin id stored by JWTAuth. JWT number claims decode
// as float64; string and integer forms are accepted too.
func AdminID(c echo.Context) (uint64, error) {
	v := c.Get("admin_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid admin_id in context")
}
