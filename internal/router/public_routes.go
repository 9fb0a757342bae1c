package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/yoonsol/coffee-franchise-site/internal/config"
	"github.com/yoonsol/coffee-franchise-site/internal/handler"
	"github.com/yoonsol/coffee-franchise-site/internal/middleware"
)

// RegisterPublic registers the unauthenticated site routes. GET endpoints go
// through the Redis response cache; the two lead forms are rate limited per
// client IP instead, since POSTs are never cached.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, rdb *redis.Client) {
	cache := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)
	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	g := e.Group("/api/public", cache)
	g.GET("/categories", p.PublicCategories)
	g.GET("/menus", p.PublicMenus)
	g.GET("/new-menus", p.PublicNewMenus)
	g.GET("/events", p.PublicEvents)
	g.GET("/faqs", p.PublicFAQs)
	g.GET("/faq-categories", p.PublicFAQCategories)
	g.GET("/startup-sessions", p.PublicSessions)

	// Store finder kept at its historical path.
	e.GET("/api/stores", p.PublicStores, cache)

	e.POST("/api/public/franchise", p.SubmitInquiry, limit)
	e.POST("/api/public/startup-session", p.SubmitSessionSignup, limit)
}
