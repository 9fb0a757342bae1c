package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yoonsol/coffee-franchise-site/internal/model"
	"github.com/yoonsol/coffee-franchise-site/internal/pubcache"
	"github.com/yoonsol/coffee-franchise-site/internal/validation"
)

// ListNewMenus handles GET /api/admin/new-menus. Statuses are recomputed
// against the current date before being returned.
func (h *AdminHandler) ListNewMenus(c echo.Context) error {
	items, err := h.NewMenus.List(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return ok(c, http.StatusOK, items)
}

// GetNewMenu handles GET /api/admin/new-menus/:id.
func (h *AdminHandler) GetNewMenu(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	n, err := h.NewMenus.GetByID(c.Request().Context(), id, time.Now().UTC())
	if err != nil {
		return repoError(c, err, "new-menu poster not found")
	}
	return ok(c, http.StatusOK, n)
}

// CreateNewMenu handles POST /api/admin/new-menus.
func (h *AdminHandler) CreateNewMenu(c echo.Context) error {
	var req validation.NewMenuInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return invalid(c, err)
	}
	n, err := newMenuFromInput(req)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	if err := h.NewMenus.Create(ctx, n, time.Now().UTC()); err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	h.revalidate(ctx, pubcache.RouteNewMenus)
	return ok(c, http.StatusCreated, n)
}

// UpdateNewMenu handles PUT /api/admin/new-menus/:id.
func (h *AdminHandler) UpdateNewMenu(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	var req validation.NewMenuInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return invalid(c, err)
	}
	n, err := newMenuFromInput(req)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	n.ID = id

	ctx := c.Request().Context()
	if err := h.NewMenus.Update(ctx, n, time.Now().UTC()); err != nil {
		return repoError(c, err, "new-menu poster not found")
	}
	h.revalidate(ctx, pubcache.RouteNewMenus)
	return ok(c, http.StatusOK, n)
}

// DeleteNewMenu handles DELETE /api/admin/new-menus/:id.
func (h *AdminHandler) DeleteNewMenu(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	if err := h.NewMenus.Delete(ctx, id); err != nil {
		return repoError(c, err, "new-menu poster not found")
	}
	h.revalidate(ctx, pubcache.RouteNewMenus)
	return ok(c, http.StatusOK, echo.Map{"deleted": true})
}

func newMenuFromInput(req validation.NewMenuInput) (*model.NewMenu, error) {
	start, err := validation.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := validation.ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	return &model.NewMenu{
		Title:     req.Title,
		StartDate: start,
		EndDate:   end,
		ImageURL:  req.ImageURL,
	}, nil
}
