package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/yoonsol/coffee-franchise-site/internal/model"
	"github.com/yoonsol/coffee-franchise-site/internal/pubcache"
	"github.com/yoonsol/coffee-franchise-site/internal/repository"
)

func leadRequest(t *testing.T, body string) (*PublicHandler, sqlmock.Sqlmock, echo.Context, *httptest.ResponseRecorder) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	h := &PublicHandler{
		Inquiries: repository.NewInquiryRepo(db),
		Sessions:  repository.NewSessionRepo(db),
		Logger:    zaptest.NewLogger(t),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/public/franchise", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return h, mock, e.NewContext(req, rec), rec
}

func TestSubmitInquiryAppliesDefaults(t *testing.T) {
	body := `{"name":"Kim","phone":"010-1234-5678","email":"kim@example.com",
		"message":"I would like to open a franchise location downtown."}`
	h, mock, c, rec := leadRequest(t, body)

	now := time.Now()
	mock.ExpectExec("INSERT INTO franchise_inquiries").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectQuery("SELECT created_at, updated_at FROM franchise_inquiries WHERE id = ?").
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	require.NoError(t, h.SubmitInquiry(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID             uint64   `json:"id"`
			Region         string   `json:"region"`
			AgeGroup       string   `json:"ageGroup"`
			StoreOwnership string   `json:"storeOwnership"`
			BrandAwareness []string `json:"brandAwareness"`
			Status         string   `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.EqualValues(t, 11, resp.Data.ID)
	assert.Equal(t, "UNDECIDED", resp.Data.Region)
	assert.Equal(t, "30-40", resp.Data.AgeGroup)
	assert.Equal(t, "NONE", resp.Data.StoreOwnership)
	assert.Equal(t, []string{"ONLINE"}, resp.Data.BrandAwareness)
	assert.Equal(t, "PENDING", resp.Data.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitInquiryShortMessageSkipsDB(t *testing.T) {
	body := `{"name":"Kim","phone":"010-1234-5678","email":"kim@example.com","message":"too short"}`
	h, mock, c, rec := leadRequest(t, body)

	require.NoError(t, h.SubmitInquiry(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Success bool                `json:"success"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Errors["message"])

	// No insert was attempted.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitInquiryBadPhone(t *testing.T) {
	body := `{"name":"Kim","phone":"not a number","email":"kim@example.com",
		"message":"I would like to open a franchise location downtown."}`
	h, _, c, rec := leadRequest(t, body)

	require.NoError(t, h.SubmitInquiry(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func signupSessionRows(id uint64, status string, regStart, regEnd time.Time) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "round", "session_date", "session_time", "location", "additional_location",
		"registration_start", "registration_end", "status", "created_at", "updated_at",
		"applicant_count",
	}).AddRow(id, 4, regEnd.AddDate(0, 0, 7), "14:00", "HEADQUARTERS", nil,
		regStart, regEnd, status, now, now, 3)
}

func TestSubmitSessionSignupClosedWindow(t *testing.T) {
	body := `{"sessionId":9,"name":"Lee","phone":"010-9999-0000","email":"lee@example.com","participants":2}`
	h, mock, c, rec := leadRequest(t, body)

	// Window ended a week ago; the session read happens once in the handler
	// and once more inside the transactional window check.
	now := time.Now().UTC()
	for i := 0; i < 2; i++ {
		mock.ExpectQuery("FROM startup_sessions s WHERE s.id").
			WithArgs(9).
			WillReturnRows(signupSessionRows(9, model.SessionAccepting,
				now.AddDate(0, 0, -21), now.AddDate(0, 0, -7)))
	}

	require.NoError(t, h.SubmitSessionSignup(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "registration period is closed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitSessionSignupRevalidatesPublicSessions(t *testing.T) {
	body := `{"sessionId":9,"name":"Lee","phone":"010-9999-0000","email":"lee@example.com","participants":2}`
	h, mock, c, rec := leadRequest(t, body)

	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	h.Cache = pubcache.NewRevalidator(rdb, "pub")

	key := pubcache.Key("pub", pubcache.RouteSessions, "")
	require.NoError(t, rdb.Set(context.Background(), key, "cached", 0).Err())

	now := time.Now().UTC()
	for i := 0; i < 2; i++ {
		mock.ExpectQuery("FROM startup_sessions s WHERE s.id").
			WithArgs(9).
			WillReturnRows(signupSessionRows(9, model.SessionAccepting,
				now.AddDate(0, 0, -7), now.AddDate(0, 0, 7)))
	}
	mock.ExpectExec("INSERT INTO session_applicants").
		WithArgs(9, "Lee", "010-9999-0000", "lee@example.com", 2).
		WillReturnResult(sqlmock.NewResult(31, 1))
	mock.ExpectQuery("SELECT created_at FROM session_applicants WHERE id = ?").
		WithArgs(31).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
	mock.ExpectExec("INSERT INTO franchise_inquiries").
		WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectQuery("SELECT created_at, updated_at FROM franchise_inquiries WHERE id = ?").
		WithArgs(12).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	require.NoError(t, h.SubmitSessionSignup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	// The cached public session listing was purged so the next read sees the
	// new applicant count.
	assert.False(t, srv.Exists(key))
	assert.NoError(t, mock.ExpectationsWereMet())
}
