package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yoonsol/coffee-franchise-site/internal/model"
	"github.com/yoonsol/coffee-franchise-site/internal/pubcache"
	"github.com/yoonsol/coffee-franchise-site/internal/validation"
)

// ListEvents handles GET /api/admin/events.
func (h *AdminHandler) ListEvents(c echo.Context) error {
	items, err := h.Events.List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return ok(c, http.StatusOK, items)
}

// GetEvent handles GET /api/admin/events/:id.
func (h *AdminHandler) GetEvent(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	e, err := h.Events.GetByID(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err, "event not found")
	}
	return ok(c, http.StatusOK, e)
}

// CreateEvent handles POST /api/admin/events.
func (h *AdminHandler) CreateEvent(c echo.Context) error {
	var req validation.EventInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return invalid(c, err)
	}
	e, err := eventFromInput(req)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	if err := h.Events.Create(ctx, e); err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	h.revalidate(ctx, pubcache.RouteEvents)
	return ok(c, http.StatusCreated, e)
}

// UpdateEvent handles PUT /api/admin/events/:id.
func (h *AdminHandler) UpdateEvent(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	var req validation.EventInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return invalid(c, err)
	}
	e, err := eventFromInput(req)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	e.ID = id

	ctx := c.Request().Context()
	if err := h.Events.Update(ctx, e); err != nil {
		return repoError(c, err, "event not found")
	}
	updated, err := h.Events.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "event not found")
	}
	h.revalidate(ctx, pubcache.RouteEvents)
	return ok(c, http.StatusOK, updated)
}

// DeleteEvent handles DELETE /api/admin/events/:id.
func (h *AdminHandler) DeleteEvent(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	if err := h.Events.Delete(ctx, id); err != nil {
		return repoError(c, err, "event not found")
	}
	h.revalidate(ctx, pubcache.RouteEvents)
	return ok(c, http.StatusOK, echo.Map{"deleted": true})
}

func eventFromInput(req validation.EventInput) (*model.Event, error) {
	start, err := validation.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := validation.ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	return &model.Event{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		StartDate:    start,
		EndDate:      end,
		EventType:    req.EventType,
		TargetStores: model.StringList(req.TargetStores),
		IsActive:     req.Active(),
	}, nil
}
