package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/yoonsol/coffee-franchise-site/internal/repository"
)

func storeAdminFixture(t *testing.T) (*AdminHandler, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &AdminHandler{
		Stores: repository.NewStoreRepo(db),
		Events: repository.NewEventRepo(db),
		Logger: zaptest.NewLogger(t),
	}, mock
}

// The update response must carry the stored row, timestamps included, like
// the other entity updates do.
func TestUpdateStoreReturnsStoredRow(t *testing.T) {
	h, mock := storeAdminFixture(t)
	c, rec := jsonCtx(http.MethodPut, "/api/admin/stores/7",
		`{"name":"Gangnam","region":"SEOUL","address":"123 Teheran-ro","phone":"02-555-0100",
		  "operatingStatus":"OPEN","storeType":"DIRECT","options":["PARKING"],"images":[]}`)
	c.SetParamNames("id")
	c.SetParamValues("7")

	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	mock.ExpectExec("UPDATE stores SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM stores WHERE id = ?").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "region", "address", "additional_address", "phone",
			"operating_status", "store_type", "options", "images", "created_at", "updated_at",
		}).AddRow(7, "Gangnam", "SEOUL", "123 Teheran-ro", nil, "02-555-0100",
			"OPEN", "DIRECT", []byte(`["PARKING"]`), []byte(`[]`), created, updated))

	require.NoError(t, h.UpdateStore(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			ID        uint64    `json:"id"`
			CreatedAt time.Time `json:"createdAt"`
			UpdatedAt time.Time `json:"updatedAt"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 7, resp.Data.ID)
	assert.Equal(t, created, resp.Data.CreatedAt)
	assert.Equal(t, updated, resp.Data.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEventReturnsStoredRow(t *testing.T) {
	h, mock := storeAdminFixture(t)
	c, rec := jsonCtx(http.MethodPut, "/api/admin/events/4",
		`{"title":"Summer Cold Brew","description":"Season opener",
		  "imageUrl":"https://coffee-site-events.s3.ap-northeast-2.amazonaws.com/summer.jpg",
		  "startDate":"2026-06-01","endDate":"2026-08-31","eventType":"PROMOTION","targetStores":[]}`)
	c.SetParamNames("id")
	c.SetParamValues("4")

	created := time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	mock.ExpectExec("UPDATE events SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM events WHERE id = ?").
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "description", "image_url", "start_date", "end_date",
			"event_type", "target_stores", "is_active", "created_at", "updated_at",
		}).AddRow(4, "Summer Cold Brew", "Season opener",
			"https://coffee-site-events.s3.ap-northeast-2.amazonaws.com/summer.jpg",
			time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			"PROMOTION", []byte(`[]`), true, created, updated))

	require.NoError(t, h.UpdateEvent(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			ID        uint64    `json:"id"`
			CreatedAt time.Time `json:"createdAt"`
			UpdatedAt time.Time `json:"updatedAt"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 4, resp.Data.ID)
	assert.Equal(t, created, resp.Data.CreatedAt)
	assert.Equal(t, updated, resp.Data.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
