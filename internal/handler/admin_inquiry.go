package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yoonsol/coffee-franchise-site/internal/validation"
)

// ListInquiries handles GET /api/admin/franchise. Newest first.
func (h *AdminHandler) ListInquiries(c echo.Context) error {
	items, err := h.Inquiries.List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return ok(c, http.StatusOK, items)
}

// GetInquiry handles GET /api/admin/franchise/:id.
func (h *AdminHandler) GetInquiry(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	q, err := h.Inquiries.GetByID(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err, "inquiry not found")
	}
	return ok(c, http.StatusOK, q)
}

// UpdateInquiry handles PATCH /api/admin/franchise/:id. Only the status and
// the response note are admin-editable; the lead's own answers are immutable.
func (h *AdminHandler) UpdateInquiry(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	var req validation.InquiryUpdateInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return invalid(c, err)
	}

	ctx := c.Request().Context()
	if err := h.Inquiries.UpdateStatus(ctx, id, req.Status, req.Response); err != nil {
		return repoError(c, err, "inquiry not found")
	}
	q, err := h.Inquiries.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "inquiry not found")
	}
	return ok(c, http.StatusOK, q)
}

// DeleteInquiry handles DELETE /api/admin/franchise/:id.
func (h *AdminHandler) DeleteInquiry(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	if err := h.Inquiries.Delete(c.Request().Context(), id); err != nil {
		return repoError(c, err, "inquiry not found")
	}
	return ok(c, http.StatusOK, echo.Map{"deleted": true})
}
