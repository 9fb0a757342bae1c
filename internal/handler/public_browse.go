package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/yoonsol/coffee-franchise-site/internal/model"
	"github.com/yoonsol/coffee-franchise-site/internal/pubcache"
	"github.com/yoonsol/coffee-franchise-site/internal/queue"
	"github.com/yoonsol/coffee-franchise-site/internal/repository"
)

// PublicHandler serves the unauthenticated site: browse endpoints and the
// two lead forms. Responses contain only ACTIVE content; CLOSED stores and
// inactive posts never leave the admin panel.
type PublicHandler struct {
	Categories *repository.CategoryRepo
	Menus      *repository.MenuRepo
	NewMenus   *repository.PosterRepo
	Stores     *repository.StoreRepo
	Events     *repository.EventRepo
	FAQs       *repository.FAQRepo
	Inquiries  *repository.InquiryRepo
	Sessions   *repository.SessionRepo
	Publisher  *queue.Publisher
	Cache      *pubcache.Revalidator
	Logger     *zap.Logger
}

// PublicCategories handles GET /api/public/categories. ACTIVE only.
func (h *PublicHandler) PublicCategories(c echo.Context) error {
	items, err := h.Categories.ListActive(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return ok(c, http.StatusOK, items)
}

// PublicMenus handles GET /api/public/menus with an optional ?category
// filter. Each menu carries display flags derived from its marketing tags.
func (h *PublicHandler) PublicMenus(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		items []*model.Menu
		err   error
	)
	if raw := c.QueryParam("category"); raw != "" {
		catID, perr := strconv.ParseUint(raw, 10, 64)
		if perr != nil {
			return fail(c, http.StatusBadRequest, "invalid category filter")
		}
		items, err = h.Menus.ListByCategory(ctx, catID)
	} else {
		items, err = h.Menus.List(ctx)
	}
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}

	out := make([]model.PublicMenu, 0, len(items))
	for _, m := range items {
		if m.Status != model.StatusActive {
			continue
		}
		out = append(out, m.PublicView())
	}
	return ok(c, http.StatusOK, out)
}

// PublicNewMenus handles GET /api/public/new-menus. Only posters whose date
// range covers today.
func (h *PublicHandler) PublicNewMenus(c echo.Context) error {
	items, err := h.NewMenus.ListActive(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return ok(c, http.StatusOK, items)
}

// PublicStores handles GET /api/stores. CLOSED locations are excluded;
// ordering is region then name.
func (h *PublicHandler) PublicStores(c echo.Context) error {
	items, err := h.Stores.ListPublic(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return ok(c, http.StatusOK, items)
}

// PublicEvents handles GET /api/public/events. Active events whose display
// window covers today.
func (h *PublicHandler) PublicEvents(c echo.Context) error {
	items, err := h.Events.ListActive(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return ok(c, http.StatusOK, items)
}

// PublicFAQs handles GET /api/public/faqs with an optional ?category filter.
func (h *PublicHandler) PublicFAQs(c echo.Context) error {
	category := c.QueryParam("category")
	if category != "" && !model.OneOf(category, model.FAQCategories) {
		return fail(c, http.StatusBadRequest, "unknown faq category")
	}
	items, err := h.FAQs.ListPublic(c.Request().Context(), category)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return ok(c, http.StatusOK, items)
}

// PublicFAQCategories handles GET /api/public/faq-categories: the fixed
// category list with per-category ACTIVE counts for the tab bar.
func (h *PublicHandler) PublicFAQCategories(c echo.Context) error {
	counts, err := h.FAQs.CategoryCounts(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	type catCount struct {
		Category string `json:"category"`
		Count    int    `json:"count"`
	}
	out := make([]catCount, 0, len(model.FAQCategories))
	for _, cat := range model.FAQCategories {
		out = append(out, catCount{Category: cat, Count: counts[cat]})
	}
	return ok(c, http.StatusOK, out)
}

// PublicSessions handles GET /api/public/startup-sessions: sessions open for
// registration right now.
func (h *PublicHandler) PublicSessions(c echo.Context) error {
	items, err := h.Sessions.ListAccepting(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return ok(c, http.StatusOK, items)
}
