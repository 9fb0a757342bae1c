package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoonsol/coffee-franchise-site/internal/model"
)

func newPosterMock(t *testing.T) (*PosterRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPosterRepo(db), mock
}

func posterRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "start_date", "end_date", "image_url", "status", "created_at", "updated_at",
	})
}

func TestNewMenuListPersistsStatusTransitions(t *testing.T) {
	repo, mock := newPosterMock(t)
	now := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	created := now.AddDate(0, -2, 0)

	// First poster was stored WAITING but its range now covers today; the
	// second is already correct and must not trigger a write.
	mock.ExpectQuery("FROM new_menus ORDER BY start_date DESC").
		WillReturnRows(posterRows().
			AddRow(1, "Spring Latte", now.AddDate(0, 0, -5), now.AddDate(0, 0, 5),
				"https://cdn.example.com/latte.jpg", model.PosterWaiting, created, created).
			AddRow(2, "Winter Mocha", now.AddDate(0, -3, 0), now.AddDate(0, -2, 0),
				"https://cdn.example.com/mocha.jpg", model.PosterExpired, created, created))
	mock.ExpectExec("UPDATE new_menus SET status").
		WithArgs(model.PosterActive, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	items, err := repo.List(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, model.PosterActive, items[0].Status)
	assert.Equal(t, model.PosterExpired, items[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewMenuListActiveRefreshesOnRead(t *testing.T) {
	repo, mock := newPosterMock(t)
	now := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("WHERE start_date <= \\? AND end_date >= \\?").
		WithArgs(now, now).
		WillReturnRows(posterRows().
			AddRow(1, "Spring Latte", now.AddDate(0, 0, -5), now.AddDate(0, 0, 5),
				"https://cdn.example.com/latte.jpg", model.PosterWaiting, now, now))

	items, err := repo.ListActive(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, model.PosterActive, items[0].Status)
}
