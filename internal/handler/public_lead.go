package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/yoonsol/coffee-franchise-site/internal/model"
	"github.com/yoonsol/coffee-franchise-site/internal/pubcache"
	"github.com/yoonsol/coffee-franchise-site/internal/queue"
	"github.com/yoonsol/coffee-franchise-site/internal/validation"
)

// SubmitInquiry handles POST /api/public/franchise. The public form only
// asks for contact details and a message; qualifying fields get fixed
// defaults so the admin list renders uniformly. The saved record is echoed
// back and an event goes to the broker for notification.
func (h *PublicHandler) SubmitInquiry(c echo.Context) error {
	var req validation.InquiryInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return invalid(c, err)
	}

	region := req.Region
	if region == "" {
		region = model.DefaultRegion
	}
	q := &model.FranchiseInquiry{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Region:         region,
		AgeGroup:       model.DefaultAgeGroup,
		StoreOwnership: model.DefaultOwnership,
		BrandAwareness: model.StringList{"ONLINE"},
		AvailableTime:  model.DefaultAvailableTime,
		Content:        req.Message,
	}

	ctx := c.Request().Context()
	if err := h.Inquiries.Create(ctx, q); err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}

	if h.Publisher != nil {
		err := h.Publisher.PublishInquiryReceived(ctx, queue.InquiryReceivedEvent{
			InquiryID:  q.ID,
			Name:       q.Name,
			Phone:      q.Phone,
			Email:      q.Email,
			Region:     q.Region,
			Message:    q.Content,
			ReceivedAt: time.Now().UTC().Format(time.RFC3339),
		})
		if err != nil {
			h.Logger.Warn("inquiry event not published", zap.Uint64("inquiry_id", q.ID), zap.Error(err))
		}
	}

	return ok(c, http.StatusCreated, q)
}

// SubmitSessionSignup handles POST /api/public/startup-session. The target
// session must be ACCEPTING with the registration window open, checked
// transactionally against the current time. A matching lead record is also
// stored so the applicant shows up in the franchise pipeline.
func (h *PublicHandler) SubmitSessionSignup(c echo.Context) error {
	var req validation.ApplicantInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return invalid(c, err)
	}

	ctx := c.Request().Context()
	session, err := h.Sessions.GetByID(ctx, req.SessionID)
	if err != nil {
		return repoError(c, err, "session not found")
	}

	now := time.Now().UTC()
	applicant := &model.SessionApplicant{
		SessionID:    req.SessionID,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Participants: req.Participants,
	}
	if err := h.Sessions.CreateApplicant(ctx, applicant, now); err != nil {
		return repoError(c, err, "session not found")
	}
	// The applicant count changed, so the cached public listing is stale.
	h.Cache.Revalidate(ctx, pubcache.RouteSessions)

	// Session signups double as franchise leads.
	lead := &model.FranchiseInquiry{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Region:         model.DefaultRegion,
		AgeGroup:       model.DefaultAgeGroup,
		StoreOwnership: model.DefaultOwnership,
		BrandAwareness: model.StringList{"ONLINE"},
		AvailableTime:  model.DefaultAvailableTime,
		Content:        fmt.Sprintf("Startup session round %d signup (%d participants)", session.Round, req.Participants),
	}
	if err := h.Inquiries.Create(ctx, lead); err != nil {
		h.Logger.Warn("lead record not created for signup", zap.Uint64("applicant_id", applicant.ID), zap.Error(err))
	}

	if h.Publisher != nil {
		err := h.Publisher.PublishSessionSignup(ctx, queue.SessionSignupEvent{
			ApplicantID:  applicant.ID,
			SessionID:    session.ID,
			Round:        session.Round,
			Name:         applicant.Name,
			Email:        applicant.Email,
			Participants: applicant.Participants,
			ReceivedAt:   now.Format(time.RFC3339),
		})
		if err != nil {
			h.Logger.Warn("signup event not published", zap.Uint64("applicant_id", applicant.ID), zap.Error(err))
		}
	}

	return ok(c, http.StatusCreated, applicant)
}
