package handler

import (
	"context"

	"go.uber.org/zap"

	"github.com/yoonsol/coffee-franchise-site/internal/pubcache"
	"github.com/yoonsol/coffee-franchise-site/internal/repository"
	"github.com/yoonsol/coffee-franchise-site/internal/storage"
)

// AdminHandler bundles every repository the back-office CRUD endpoints need,
// plus the uploader and the public-cache revalidator. After each successful
// mutation the affected public routes are purged so the site reflects the
// change on the next request.
type AdminHandler struct {
	Categories *repository.CategoryRepo
	Menus      *repository.MenuRepo
	NewMenus   *repository.PosterRepo
	Stores     *repository.StoreRepo
	Events     *repository.EventRepo
	FAQs       *repository.FAQRepo
	Inquiries  *repository.InquiryRepo
	Sessions   *repository.SessionRepo
	Uploader   *storage.Uploader
	Cache      *pubcache.Revalidator
	Logger     *zap.Logger
}

// revalidate purges cached public responses for the given routes. Safe to
// call with a nil revalidator; purge failures only get logged.
func (h *AdminHandler) revalidate(ctx context.Context, routes ...string) {
	if h.Cache == nil {
		return
	}
	h.Cache.Revalidate(ctx, routes...)
}
