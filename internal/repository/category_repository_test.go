package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoonsol/coffee-franchise-site/internal/model"
)

func newMock(t *testing.T) (*CategoryRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewCategoryRepo(db), mock
}

func TestCategoryListIncludesMenuCount(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery("SELECT c.id, c.name, c.status").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "status", "created_at", "updated_at", "menu_count"}).
			AddRow(1, "Coffee", "ACTIVE", now, now, 12).
			AddRow(2, "Dessert", "INACTIVE", now, now, 0))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 12, items[0].MenuCount)
	assert.Equal(t, "Dessert", items[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryCreateRejectsDuplicateName(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM categories WHERE name = ? AND id <> ?")).
		WithArgs("Coffee", 0).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := repo.Create(context.Background(), &model.Category{Name: "Coffee", Status: "ACTIVE"})
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryCreatePopulatesTimestamps(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM categories WHERE name = ? AND id <> ?")).
		WithArgs("Tea", 0).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO categories (name, status) VALUES (?, ?)")).
		WithArgs("Tea", "ACTIVE").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery("SELECT created_at, updated_at FROM categories WHERE id = ?").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	cat := &model.Category{Name: "Tea", Status: "ACTIVE"}
	require.NoError(t, repo.Create(context.Background(), cat))
	assert.EqualValues(t, 7, cat.ID)
	assert.False(t, cat.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryDeleteBlockedWhileMenusExist(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM menus WHERE category_id = ?")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, ErrCategoryInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryDeleteWhenEmpty(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM menus WHERE category_id = ?")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("DELETE FROM categories WHERE id = ?").
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryGetByIDNotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT id, name, status, created_at, updated_at FROM categories WHERE id = ?").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "status", "created_at", "updated_at"}))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
