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

func newStoreMock(t *testing.T) (*StoreRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStoreRepo(db), mock
}

func storeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "region", "address", "additional_address", "phone",
		"operating_status", "store_type", "options", "images", "created_at", "updated_at",
	})
}

func TestStoreListPublicExcludesClosed(t *testing.T) {
	repo, mock := newStoreMock(t)
	now := time.Now()

	mock.ExpectQuery("WHERE operating_status <>").
		WithArgs(model.StoreClosed).
		WillReturnRows(storeRows().
			AddRow(1, "Gangnam", "SEOUL", "123 Teheran-ro", nil, "02-555-1234",
				"OPEN", "FRANCHISE", []byte(`["PARKING","WIFI"]`), []byte(`[]`), now, now).
			AddRow(2, "Haeundae", "BUSAN", "1 Beach-ro", "2F", "051-777-9999",
				"PREPARING", "DIRECT", []byte(`[]`), []byte(`["https://cdn.example.com/a.jpg"]`), now, now))

	items, err := repo.ListPublic(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, model.StringList{"PARKING", "WIFI"}, items[0].Options)
	assert.Equal(t, "2F", items[1].AdditionalAddress)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreCountsOpenOnly(t *testing.T) {
	repo, mock := newStoreMock(t)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(model.StoreOpen).
		WillReturnRows(sqlmock.NewRows([]string{"total", "open"}).AddRow(10, 7))

	total, open, err := repo.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, total)
	assert.Equal(t, 7, open)
}

func TestStoreUpdateNotFound(t *testing.T) {
	repo, mock := newStoreMock(t)

	mock.ExpectExec("UPDATE stores SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &model.Store{ID: 42, Name: "Ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}
