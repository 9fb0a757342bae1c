package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yoonsol/coffee-franchise-site/internal/model"
	"github.com/yoonsol/coffee-franchise-site/internal/pubcache"
	"github.com/yoonsol/coffee-franchise-site/internal/validation"
)

// ListCategories handles GET /api/admin/categories. Every category is
// returned with its menu count regardless of status.
func (h *AdminHandler) ListCategories(c echo.Context) error {
	items, err := h.Categories.List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return ok(c, http.StatusOK, items)
}

// GetCategory handles GET /api/admin/categories/:id.
func (h *AdminHandler) GetCategory(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	cat, err := h.Categories.GetByID(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err, "category not found")
	}
	return ok(c, http.StatusOK, cat)
}

// CreateCategory handles POST /api/admin/categories. Names are unique; a
// duplicate yields 409.
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var req validation.CategoryInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return invalid(c, err)
	}

	ctx := c.Request().Context()
	cat := &model.Category{Name: req.Name, Status: req.Status}
	if err := h.Categories.Create(ctx, cat); err != nil {
		return repoError(c, err, "category not found")
	}
	h.revalidate(ctx, pubcache.RouteCategories, pubcache.RouteMenus)
	return ok(c, http.StatusCreated, cat)
}

// UpdateCategory handles PUT /api/admin/categories/:id.
func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	var req validation.CategoryInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return invalid(c, err)
	}

	ctx := c.Request().Context()
	if err := h.Categories.Update(ctx, id, req.Name, req.Status); err != nil {
		return repoError(c, err, "category not found")
	}
	cat, err := h.Categories.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "category not found")
	}
	h.revalidate(ctx, pubcache.RouteCategories, pubcache.RouteMenus)
	return ok(c, http.StatusOK, cat)
}

// DeleteCategory handles DELETE /api/admin/categories/:id. A category that
// still has menus cannot be removed.
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	if err := h.Categories.Delete(ctx, id); err != nil {
		return repoError(c, err, "category not found")
	}
	h.revalidate(ctx, pubcache.RouteCategories, pubcache.RouteMenus)
	return ok(c, http.StatusOK, echo.Map{"deleted": true})
}
