package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoonsol/coffee-franchise-site/internal/config"
	"github.com/yoonsol/coffee-franchise-site/internal/repository"
	"github.com/yoonsol/coffee-franchise-site/internal/utils"
)

func authFixture(t *testing.T) (*AuthHandler, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := config.Config{
		JWTSecret:      "test-secret",
		AccessTTLMin:   15,
		RefreshTTLDays: 14,
		BcryptCost:     4, // min cost keeps the test fast
	}
	return NewAuthHandler(cfg, repository.NewAdminRepo(db), repository.NewTokenRepo(db)), mock
}

func adminRow(t *testing.T, password, status string) *sqlmock.Rows {
	hash, err := utils.HashPassword(password, 4)
	require.NoError(t, err)
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "username", "password_hash", "name", "status", "created_at", "updated_at",
	}).AddRow(1, "admin", hash, "Site Admin", status, now, now)
}

func loginCtx(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginIssuesTokenPair(t *testing.T) {
	h, mock := authFixture(t)
	c, rec := loginCtx(`{"username":"admin","password":"correct-horse"}`)

	mock.ExpectQuery("FROM admins WHERE username").
		WithArgs("admin").
		WillReturnRows(adminRow(t, "correct-horse", "ACTIVE"))
	mock.ExpectExec("INSERT INTO refresh_tokens").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Admin struct {
				Username string `json:"username"`
			} `json:"admin"`
			Access struct {
				Token string `json:"token"`
			} `json:"access"`
			Refresh struct {
				Token string `json:"token"`
			} `json:"refresh"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "admin", resp.Data.Admin.Username)
	assert.NotEmpty(t, resp.Data.Access.Token)
	assert.Len(t, resp.Data.Refresh.Token, 96)
	assert.NotContains(t, rec.Body.String(), "password_hash")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPasswordIs401(t *testing.T) {
	h, mock := authFixture(t)
	c, rec := loginCtx(`{"username":"admin","password":"wrong"}`)

	mock.ExpectQuery("FROM admins WHERE username").
		WithArgs("admin").
		WillReturnRows(adminRow(t, "correct-horse", "ACTIVE"))

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginSuspendedAdminIs401(t *testing.T) {
	h, mock := authFixture(t)
	c, rec := loginCtx(`{"username":"admin","password":"correct-horse"}`)

	mock.ExpectQuery("FROM admins WHERE username").
		WithArgs("admin").
		WillReturnRows(adminRow(t, "correct-horse", "INACTIVE"))

	require.NoError(t, h.Login(c))
	// Same response as a bad password so account state is not leaked.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginUnknownUserIs401(t *testing.T) {
	h, mock := authFixture(t)
	c, rec := loginCtx(`{"username":"ghost","password":"whatever"}`)

	mock.ExpectQuery("FROM admins WHERE username").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "username", "password_hash", "name", "status", "created_at", "updated_at",
		}))

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
