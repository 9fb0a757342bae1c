package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yoonsol/coffee-franchise-site/internal/model"
	"github.com/yoonsol/coffee-franchise-site/internal/pubcache"
	"github.com/yoonsol/coffee-franchise-site/internal/validation"
)

// ListSessions handles GET /api/admin/sessions. Each row carries its
// applicant count.
func (h *AdminHandler) ListSessions(c echo.Context) error {
	items, err := h.Sessions.List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return ok(c, http.StatusOK, items)
}

// GetSession handles GET /api/admin/sessions/:id.
func (h *AdminHandler) GetSession(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	s, err := h.Sessions.GetByID(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err, "session not found")
	}
	return ok(c, http.StatusOK, s)
}

// CreateSession handles POST /api/admin/sessions. Rounds are unique; a
// duplicate yields 409.
func (h *AdminHandler) CreateSession(c echo.Context) error {
	var req validation.SessionInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return invalid(c, err)
	}
	s, err := sessionFromInput(req)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	if err := h.Sessions.Create(ctx, s); err != nil {
		return repoError(c, err, "session not found")
	}
	h.revalidate(ctx, pubcache.RouteSessions)
	return ok(c, http.StatusCreated, s)
}

// UpdateSession handles PUT /api/admin/sessions/:id. The round is fixed at
// creation and silently ignored here.
func (h *AdminHandler) UpdateSession(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	var req validation.SessionInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return invalid(c, err)
	}
	s, err := sessionFromInput(req)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	s.ID = id

	ctx := c.Request().Context()
	if err := h.Sessions.Update(ctx, s); err != nil {
		return repoError(c, err, "session not found")
	}
	updated, err := h.Sessions.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "session not found")
	}
	h.revalidate(ctx, pubcache.RouteSessions)
	return ok(c, http.StatusOK, updated)
}

// DeleteSession handles DELETE /api/admin/sessions/:id. Applicants go with
// the session.
func (h *AdminHandler) DeleteSession(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	if err := h.Sessions.Delete(ctx, id); err != nil {
		return repoError(c, err, "session not found")
	}
	h.revalidate(ctx, pubcache.RouteSessions)
	return ok(c, http.StatusOK, echo.Map{"deleted": true})
}

// ListApplicants handles GET /api/admin/sessions/:id/applicants.
func (h *AdminHandler) ListApplicants(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	if _, err := h.Sessions.GetByID(ctx, id); err != nil {
		return repoError(c, err, "session not found")
	}
	items, err := h.Sessions.ListApplicants(ctx, id)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return ok(c, http.StatusOK, items)
}

// DeleteApplicant handles DELETE /api/admin/sessions/:id/applicants/:applicantId.
func (h *AdminHandler) DeleteApplicant(c echo.Context) error {
	if _, err := idParam(c); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	applicantID, err := paramUint(c, "applicantId")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid applicant id")
	}
	if err := h.Sessions.DeleteApplicant(c.Request().Context(), applicantID); err != nil {
		return repoError(c, err, "applicant not found")
	}
	return ok(c, http.StatusOK, echo.Map{"deleted": true})
}

func sessionFromInput(req validation.SessionInput) (*model.StartupSession, error) {
	date, err := validation.ParseDate(req.SessionDate)
	if err != nil {
		return nil, err
	}
	regStart, err := validation.ParseDate(req.RegistrationStart)
	if err != nil {
		return nil, err
	}
	regEnd, err := validation.ParseDate(req.RegistrationEnd)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = model.SessionWaiting
	}
	return &model.StartupSession{
		Round:              req.Round,
		SessionDate:        date,
		SessionTime:        req.SessionTime,
		Location:           req.Location,
		AdditionalLocation: req.AdditionalLocation,
		RegistrationStart:  regStart,
		RegistrationEnd:    regEnd,
		Status:             status,
	}, nil
}
