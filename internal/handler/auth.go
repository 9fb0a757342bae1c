package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yoonsol/coffee-franchise-site/internal/config"
	"github.com/yoonsol/coffee-franchise-site/internal/middleware"
	"github.com/yoonsol/coffee-franchise-site/internal/model"
	"github.com/yoonsol/coffee-franchise-site/internal/repository"
	"github.com/yoonsol/coffee-franchise-site/internal/utils"
	"github.com/yoonsol/coffee-franchise-site/internal/validation"
)

// AuthHandler bundles dependencies for the admin auth endpoints.
type AuthHandler struct {
	Cfg    config.Config
	Admins *repository.AdminRepo
	Tokens *repository.TokenRepo
}

func NewAuthHandler(cfg config.Config, a *repository.AdminRepo, t *repository.TokenRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Admins: a, Tokens: t}
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type authResp struct {
	Admin   *model.Admin `json:"admin"`
	Access  tokenPart    `json:"access"`
	Refresh tokenPart    `json:"refresh"`
}

// Login verifies credentials and issues an access/refresh token pair. Only
// ACTIVE admins may log in; suspended accounts get the same response as a
// wrong password.
func (h *AuthHandler) Login(c echo.Context) error {
	var req validation.LoginInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return invalid(c, err)
	}

	ctx := c.Request().Context()
	admin, err := h.Admins.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusUnauthorized, "invalid credentials")
		}
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	if admin.Status != model.StatusActive || !utils.VerifyPassword(admin.PasswordHash, req.Password) {
		return fail(c, http.StatusUnauthorized, "invalid credentials")
	}

	return h.issueTokens(c, admin)
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued. Reuse of a revoked token yields 401.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.Bind(&req); err != nil || req.RefreshToken == "" {
		return fail(c, http.StatusBadRequest, "refresh token required")
	}

	ctx := c.Request().Context()
	hash := utils.HashRefreshRaw(req.RefreshToken)
	adminID, err := h.Tokens.ValidateRefresh(ctx, hash)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusUnauthorized, "invalid refresh token")
		}
		return fail(c, http.StatusInternalServerError, "internal error")
	}

	admin, err := h.Admins.GetByID(ctx, adminID)
	if err != nil || admin.Status != model.StatusActive {
		return fail(c, http.StatusUnauthorized, "invalid refresh token")
	}

	if err := h.Tokens.RevokeByHash(ctx, hash); err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return h.issueTokens(c, admin)
}

// Logout revokes the presented refresh token. Always returns 200 so clients
// can clear state regardless of token validity.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.Bind(&req); err == nil && req.RefreshToken != "" {
		_ = h.Tokens.RevokeByHash(c.Request().Context(), utils.HashRefreshRaw(req.RefreshToken))
	}
	return ok(c, http.StatusOK, echo.Map{"loggedOut": true})
}

// Me returns the authenticated admin's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	id, err := middleware.AdminID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	admin, err := h.Admins.GetByID(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err, "admin not found")
	}
	return ok(c, http.StatusOK, admin)
}

// ChangePassword verifies the current password, stores the new hash and
// revokes every outstanding refresh token for the account.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	id, err := middleware.AdminID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	var req validation.PasswordInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return invalid(c, err)
	}

	ctx := c.Request().Context()
	admin, err := h.Admins.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "admin not found")
	}
	if !utils.VerifyPassword(admin.PasswordHash, req.CurrentPassword) {
		return fail(c, http.StatusUnauthorized, "current password is incorrect")
	}
	if err := h.Admins.UpdatePassword(ctx, id, req.NewPassword, h.Cfg.BcryptCost); err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	_ = h.Tokens.RevokeAllForAdmin(ctx, id)
	return ok(c, http.StatusOK, echo.Map{"changed": true})
}

func (h *AuthHandler) issueTokens(c echo.Context, admin *model.Admin) error {
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, admin.ID, admin.Username, h.Cfg.AccessTTLMin)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	ctx := c.Request().Context()
	if err := h.Tokens.StoreRefresh(ctx, admin.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return ok(c, http.StatusOK, authResp{
		Admin:   admin,
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp},
	})
}
