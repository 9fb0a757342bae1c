package router

import (
	"github.com/labstack/echo/v4"

	"github.com/yoonsol/coffee-franchise-site/internal/handler"
	"github.com/yoonsol/coffee-franchise-site/internal/middleware"
)

// RegisterAuth registers the admin auth endpoints. Login and refresh are
// open; me and password changes require a valid token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, isActive middleware.ActiveAdminFunc) {
	g := e.Group("/api/auth")
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	protected := e.Group("/api/auth",
		middleware.JWTAuth(a.Cfg.JWTSecret),
		middleware.RequireActiveAdmin(isActive))
	protected.GET("/me", a.Me)
	protected.PUT("/password", a.ChangePassword)
}

// RegisterAdmin registers the back-office CRUD surface. Every route requires
// a valid access token and an ACTIVE admin account; the account status is
// re-checked against the DB on each request so a suspension takes effect
// immediately.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string, isActive middleware.ActiveAdminFunc) {
	g := e.Group("/api/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireActiveAdmin(isActive))

	g.GET("/dashboard", h.Dashboard)

	g.GET("/categories", h.ListCategories)
	g.POST("/categories", h.CreateCategory)
	g.GET("/categories/:id", h.GetCategory)
	g.PUT("/categories/:id", h.UpdateCategory)
	g.DELETE("/categories/:id", h.DeleteCategory)

	g.GET("/menus", h.ListMenus)
	g.POST("/menus", h.CreateMenu)
	g.GET("/menus/:id", h.GetMenu)
	g.PUT("/menus/:id", h.UpdateMenu)
	g.DELETE("/menus/:id", h.DeleteMenu)

	g.GET("/new-menus", h.ListNewMenus)
	g.POST("/new-menus", h.CreateNewMenu)
	g.GET("/new-menus/:id", h.GetNewMenu)
	g.PUT("/new-menus/:id", h.UpdateNewMenu)
	g.DELETE("/new-menus/:id", h.DeleteNewMenu)

	g.GET("/stores", h.ListStores)
	g.POST("/stores", h.CreateStore)
	g.GET("/stores/:id", h.GetStore)
	g.PUT("/stores/:id", h.UpdateStore)
	g.DELETE("/stores/:id", h.DeleteStore)

	g.GET("/events", h.ListEvents)
	g.POST("/events", h.CreateEvent)
	g.GET("/events/:id", h.GetEvent)
	g.PUT("/events/:id", h.UpdateEvent)
	g.DELETE("/events/:id", h.DeleteEvent)

	g.GET("/faqs", h.ListFAQs)
	g.POST("/faqs", h.CreateFAQ)
	g.GET("/faqs/:id", h.GetFAQ)
	g.PUT("/faqs/:id", h.UpdateFAQ)
	g.DELETE("/faqs/:id", h.DeleteFAQ)

	g.GET("/franchise", h.ListInquiries)
	g.GET("/franchise/:id", h.GetInquiry)
	g.PATCH("/franchise/:id", h.UpdateInquiry)
	g.DELETE("/franchise/:id", h.DeleteInquiry)

	g.GET("/sessions", h.ListSessions)
	g.POST("/sessions", h.CreateSession)
	g.GET("/sessions/:id", h.GetSession)
	g.PUT("/sessions/:id", h.UpdateSession)
	g.DELETE("/sessions/:id", h.DeleteSession)
	g.GET("/sessions/:id/applicants", h.ListApplicants)
	g.DELETE("/sessions/:id/applicants/:applicantId", h.DeleteApplicant)

	g.POST("/uploads/:bucket", h.Upload)
	g.DELETE("/uploads", h.DeleteUpload)
}
