// Package handler exposes the HTTP surface: public browsing and lead
// submission endpoints, admin CRUD, auth and uploads. Every response uses a
// uniform envelope: {"success": bool, "data": ...} on success and
// {"success": false, "error": "...", "errors": {...}} on failure, where
// errors carries per-field validation messages when available.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/yoonsol/coffee-franchise-site/internal/repository"
	"github.com/yoonsol/coffee-franchise-site/internal/validation"
)

func ok(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, echo.Map{"success": true, "data": data})
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"success": false, "error": msg})
}

// invalid maps a validation failure to a 400 with per-field messages when the
// error carries them.
func invalid(c echo.Context, err error) error {
	if fields := validation.FieldErrors(err); fields != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "validation failed",
			"errors":  fields,
		})
	}
	return fail(c, http.StatusBadRequest, err.Error())
}

// idParam parses the :id path segment.
func idParam(c echo.Context) (uint64, error) {
	return paramUint(c, "id")
}

func paramUint(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid " + name)
	}
	return id, nil
}

// repoError translates repository sentinels into HTTP responses. notFoundMsg
// names the missing resource; anything unexpected becomes a 500.
func repoError(c echo.Context, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fail(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, repository.ErrDuplicateName):
		return fail(c, http.StatusConflict, "name already in use")
	case errors.Is(err, repository.ErrDuplicateRound):
		return fail(c, http.StatusConflict, "round already in use")
	case errors.Is(err, repository.ErrCategoryInUse):
		return fail(c, http.StatusConflict, "category still has menus")
	case errors.Is(err, repository.ErrRegistrationClosed):
		return fail(c, http.StatusConflict, "registration period is closed")
	default:
		return fail(c, http.StatusInternalServerError, "internal error")
	}
}
