package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/yoonsol/coffee-franchise-site/internal/model"
	"github.com/yoonsol/coffee-franchise-site/internal/pubcache"
	"github.com/yoonsol/coffee-franchise-site/internal/validation"
)

// ListMenus handles GET /api/admin/menus with an optional ?category filter.
func (h *AdminHandler) ListMenus(c echo.Context) error {
	ctx := c.Request().Context()
	if raw := c.QueryParam("category"); raw != "" {
		catID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return fail(c, http.StatusBadRequest, "invalid category filter")
		}
		items, err := h.Menus.ListByCategory(ctx, catID)
		if err != nil {
			return fail(c, http.StatusInternalServerError, "internal error")
		}
		return ok(c, http.StatusOK, items)
	}
	items, err := h.Menus.List(ctx)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return ok(c, http.StatusOK, items)
}

// GetMenu handles GET /api/admin/menus/:id.
func (h *AdminHandler) GetMenu(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	m, err := h.Menus.GetByID(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err, "menu not found")
	}
	return ok(c, http.StatusOK, m)
}

// CreateMenu handles POST /api/admin/menus. The referenced category must
// exist; discount pricing is validated against the regular price.
func (h *AdminHandler) CreateMenu(c echo.Context) error {
	var req validation.MenuInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return invalid(c, err)
	}

	ctx := c.Request().Context()
	m := menuFromInput(req)
	if err := h.Menus.Create(ctx, m); err != nil {
		return repoError(c, err, "category not found")
	}
	h.revalidate(ctx, pubcache.RouteMenus, pubcache.RouteCategories)
	return ok(c, http.StatusCreated, m)
}

// UpdateMenu handles PUT /api/admin/menus/:id.
func (h *AdminHandler) UpdateMenu(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	var req validation.MenuInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return invalid(c, err)
	}

	ctx := c.Request().Context()
	m := menuFromInput(req)
	m.ID = id
	if err := h.Menus.Update(ctx, m); err != nil {
		return repoError(c, err, "menu not found")
	}
	updated, err := h.Menus.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "menu not found")
	}
	h.revalidate(ctx, pubcache.RouteMenus, pubcache.RouteCategories)
	return ok(c, http.StatusOK, updated)
}

// DeleteMenu handles DELETE /api/admin/menus/:id.
func (h *AdminHandler) DeleteMenu(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	if err := h.Menus.Delete(ctx, id); err != nil {
		return repoError(c, err, "menu not found")
	}
	h.revalidate(ctx, pubcache.RouteMenus, pubcache.RouteCategories)
	return ok(c, http.StatusOK, echo.Map{"deleted": true})
}

func menuFromInput(req validation.MenuInput) *model.Menu {
	m := &model.Menu{
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		MarketingTags: model.StringList(req.MarketingTags),
		TempOptions:   model.StringList(req.TempOptions),
		Description:   req.Description,
		Status:        req.Status,
	}
	if req.ImageURL != "" {
		m.ImageURL = &req.ImageURL
	}
	return m
}
