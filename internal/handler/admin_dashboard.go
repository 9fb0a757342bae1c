package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/yoonsol/coffee-franchise-site/internal/model"
)

type dashboardCounts struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

type dashboardResp struct {
	Stores    dashboardCounts           `json:"stores"`
	Menus     dashboardCounts           `json:"menus"`
	Events    dashboardCounts           `json:"events"`
	FAQs      dashboardCounts           `json:"faqs"`
	Sessions  dashboardCounts           `json:"sessions"`
	Inquiries struct {
		Total   int `json:"total"`
		Pending int `json:"pending"`
	} `json:"inquiries"`
	RecentInquiries []*model.FranchiseInquiry `json:"recentInquiries"`
}

// Dashboard handles GET /api/admin/dashboard. Aggregates per-resource totals
// for the landing screen; store activity counts locations whose operating
// status is OPEN.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	var resp dashboardResp
	var err error

	if resp.Stores.Total, resp.Stores.Active, err = h.Stores.Counts(ctx); err != nil {
		return h.countsErr(c, "stores", err)
	}
	if resp.Menus.Total, resp.Menus.Active, err = h.Menus.Counts(ctx); err != nil {
		return h.countsErr(c, "menus", err)
	}
	if resp.Events.Total, resp.Events.Active, err = h.Events.Counts(ctx); err != nil {
		return h.countsErr(c, "events", err)
	}
	if resp.FAQs.Total, resp.FAQs.Active, err = h.FAQs.Counts(ctx); err != nil {
		return h.countsErr(c, "faqs", err)
	}
	if resp.Sessions.Total, resp.Sessions.Active, err = h.Sessions.Counts(ctx); err != nil {
		return h.countsErr(c, "sessions", err)
	}
	if resp.Inquiries.Total, resp.Inquiries.Pending, err = h.Inquiries.Counts(ctx); err != nil {
		return h.countsErr(c, "inquiries", err)
	}
	if resp.RecentInquiries, err = h.Inquiries.Recent(ctx, 5); err != nil {
		return h.countsErr(c, "recent inquiries", err)
	}
	if resp.RecentInquiries == nil {
		resp.RecentInquiries = []*model.FranchiseInquiry{}
	}

	return ok(c, http.StatusOK, resp)
}

func (h *AdminHandler) countsErr(c echo.Context, what string, err error) error {
	h.Logger.Error("dashboard aggregation failed", zap.String("resource", what), zap.Error(err))
	return fail(c, http.StatusInternalServerError, "internal error")
}
