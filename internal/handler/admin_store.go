package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yoonsol/coffee-franchise-site/internal/model"
	"github.com/yoonsol/coffee-franchise-site/internal/pubcache"
	"github.com/yoonsol/coffee-franchise-site/internal/validation"
)

// ListStores handles GET /api/admin/stores. Unlike the public listing this
// includes CLOSED locations.
func (h *AdminHandler) ListStores(c echo.Context) error {
	items, err := h.Stores.List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return ok(c, http.StatusOK, items)
}

// GetStore handles GET /api/admin/stores/:id.
func (h *AdminHandler) GetStore(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	s, err := h.Stores.GetByID(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err, "store not found")
	}
	return ok(c, http.StatusOK, s)
}

// CreateStore handles POST /api/admin/stores.
func (h *AdminHandler) CreateStore(c echo.Context) error {
	var req validation.StoreInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return invalid(c, err)
	}

	ctx := c.Request().Context()
	s := storeFromInput(req)
	if err := h.Stores.Create(ctx, s); err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	h.revalidate(ctx, pubcache.RouteStores)
	return ok(c, http.StatusCreated, s)
}

// UpdateStore handles PUT /api/admin/stores/:id.
func (h *AdminHandler) UpdateStore(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	var req validation.StoreInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return invalid(c, err)
	}

	ctx := c.Request().Context()
	s := storeFromInput(req)
	s.ID = id
	if err := h.Stores.Update(ctx, s); err != nil {
		return repoError(c, err, "store not found")
	}
	updated, err := h.Stores.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "store not found")
	}
	h.revalidate(ctx, pubcache.RouteStores)
	return ok(c, http.StatusOK, updated)
}

// DeleteStore handles DELETE /api/admin/stores/:id.
func (h *AdminHandler) DeleteStore(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	if err := h.Stores.Delete(ctx, id); err != nil {
		return repoError(c, err, "store not found")
	}
	h.revalidate(ctx, pubcache.RouteStores)
	return ok(c, http.StatusOK, echo.Map{"deleted": true})
}

func storeFromInput(req validation.StoreInput) *model.Store {
	return &model.Store{
		Name:              req.Name,
		Region:            req.Region,
		Address:           req.Address,
		AdditionalAddress: req.AdditionalAddress,
		Phone:             req.Phone,
		OperatingStatus:   req.OperatingStatus,
		StoreType:         req.StoreType,
		Options:           model.StringList(req.Options),
		Images:            model.StringList(req.Images),
	}
}
