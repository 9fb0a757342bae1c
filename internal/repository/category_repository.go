package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/yoonsol/coffee-franchise-site/internal/model"
)

// CategoryRepo encapsulates all database queries related to menu categories.
type CategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepo constructs a CategoryRepo with the provided DB handle.
func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// List returns all categories ordered by creation time, each with the number
// of menus referencing it. The count drives both the admin table and the
// delete guard in the UI.
func (r *CategoryRepo) List(ctx context.Context) ([]*model.Category, error) {
	const q = `SELECT c.id, c.name, c.status, c.created_at, c.updated_at,
	                  (SELECT COUNT(*) FROM menus m WHERE m.category_id = c.id) AS menu_count
	           FROM categories c ORDER BY c.created_at ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Category
	for rows.Next() {
		c := new(model.Category)
		if err := rows.Scan(&c.ID, &c.Name, &c.Status, &c.CreatedAt, &c.UpdatedAt, &c.MenuCount); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListActive returns active categories for the public menus page.
func (r *CategoryRepo) ListActive(ctx context.Context) ([]*model.Category, error) {
	const q = `SELECT id, name, status, created_at, updated_at
	           FROM categories WHERE status = ? ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, q, model.StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Category
	for rows.Next() {
		c := new(model.Category)
		if err := rows.Scan(&c.ID, &c.Name, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a category or ErrNotFound.
func (r *CategoryRepo) GetByID(ctx context.Context, id uint64) (*model.Category, error) {
	const q = `SELECT id, name, status, created_at, updated_at FROM categories WHERE id = ?`
	var c model.Category
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// nameTaken reports whether another category already uses name. excludeID is
// 0 on create.
func (r *CategoryRepo) nameTaken(ctx context.Context, name string, excludeID uint64) (bool, error) {
	const q = `SELECT COUNT(*) FROM categories WHERE name = ? AND id <> ?`
	var n int
	if err := r.db.QueryRowContext(ctx, q, name, excludeID).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts a category. Duplicate names are rejected with
// ErrDuplicateName before the insert so the handler can return a field-level
// error instead of a generic failure.
func (r *CategoryRepo) Create(ctx context.Context, c *model.Category) error {
	taken, err := r.nameTaken(ctx, c.Name, 0)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateName
	}
	const q = `INSERT INTO categories (name, status) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, c.Name, c.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)

	const qSelect = `SELECT created_at, updated_at FROM categories WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, c.ID).Scan(&c.CreatedAt, &c.UpdatedAt)
}

// Update renames and/or re-statuses a category.
func (r *CategoryRepo) Update(ctx context.Context, id uint64, name, status string) error {
	taken, err := r.nameTaken(ctx, name, id)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateName
	}
	const q = `UPDATE categories SET name = ?, status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, name, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a category. Deletion is blocked with ErrCategoryInUse while
// any menu references it; the check and the delete run in one transaction.
func (r *CategoryRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	var menus int
	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM menus WHERE category_id = ?`, id).Scan(&menus); err != nil {
		return err
	}
	if menus > 0 {
		err = ErrCategoryInUse
		return err
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrNotFound
		return err
	}
	return nil
}
