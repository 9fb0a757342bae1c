package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yoonsol/coffee-franchise-site/internal/model"
	"github.com/yoonsol/coffee-franchise-site/internal/pubcache"
	"github.com/yoonsol/coffee-franchise-site/internal/validation"
)

// ListFAQs handles GET /api/admin/faqs.
func (h *AdminHandler) ListFAQs(c echo.Context) error {
	items, err := h.FAQs.List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return ok(c, http.StatusOK, items)
}

// GetFAQ handles GET /api/admin/faqs/:id.
func (h *AdminHandler) GetFAQ(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	f, err := h.FAQs.GetByID(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err, "faq not found")
	}
	return ok(c, http.StatusOK, f)
}

// CreateFAQ handles POST /api/admin/faqs.
func (h *AdminHandler) CreateFAQ(c echo.Context) error {
	var req validation.FAQInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return invalid(c, err)
	}

	ctx := c.Request().Context()
	f := &model.FAQ{Category: req.Category, Title: req.Title, Content: req.Content, Status: req.Status}
	if err := h.FAQs.Create(ctx, f); err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	h.revalidate(ctx, pubcache.RouteFAQs, pubcache.RouteFAQCategories)
	return ok(c, http.StatusCreated, f)
}

// UpdateFAQ handles PUT /api/admin/faqs/:id.
func (h *AdminHandler) UpdateFAQ(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	var req validation.FAQInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return invalid(c, err)
	}

	ctx := c.Request().Context()
	f := &model.FAQ{ID: id, Category: req.Category, Title: req.Title, Content: req.Content, Status: req.Status}
	if err := h.FAQs.Update(ctx, f); err != nil {
		return repoError(c, err, "faq not found")
	}
	h.revalidate(ctx, pubcache.RouteFAQs, pubcache.RouteFAQCategories)
	return ok(c, http.StatusOK, f)
}

// DeleteFAQ handles DELETE /api/admin/faqs/:id.
func (h *AdminHandler) DeleteFAQ(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	if err := h.FAQs.Delete(ctx, id); err != nil {
		return repoError(c, err, "faq not found")
	}
	h.revalidate(ctx, pubcache.RouteFAQs, pubcache.RouteFAQCategories)
	return ok(c, http.StatusOK, echo.Map{"deleted": true})
}
