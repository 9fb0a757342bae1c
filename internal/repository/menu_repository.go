package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/yoonsol/coffee-franchise-site/internal/model"
)

// MenuRepo encapsulates all database queries related to menu items.
type MenuRepo struct {
	db *sql.DB
}

// NewMenuRepo constructs a MenuRepo with the provided DB handle.
func NewMenuRepo(db *sql.DB) *MenuRepo {
	return &MenuRepo{db: db}
}

const menuCols = `m.id, m.category_id, c.name, m.name, m.price, m.discount_price,
	m.marketing_tags, m.temperature_options, m.description, m.image_url, m.status,
	m.created_at, m.updated_at`

func scanMenu(sc interface{ Scan(...any) error }) (*model.Menu, error) {
	m := new(model.Menu)
	var discount sql.NullInt64
	var image sql.NullString
	err := sc.Scan(&m.ID, &m.CategoryID, &m.CategoryName, &m.Name, &m.Price, &discount,
		&m.MarketingTags, &m.TempOptions, &m.Description, &image, &m.Status,
		&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if discount.Valid {
		v := discount.Int64
		m.DiscountPrice = &v
	}
	if image.Valid {
		v := image.String
		m.ImageURL = &v
	}
	return m, nil
}

// List returns all menus joined with their category, ordered for the admin
// table (category name asc, newest first within a category).
func (r *MenuRepo) List(ctx context.Context) ([]*model.Menu, error) {
	q := `SELECT ` + menuCols + ` FROM menus m
	      JOIN categories c ON c.id = m.category_id
	      ORDER BY c.name ASC, m.created_at DESC`
	return r.queryMenus(ctx, q)
}

// ListByCategory returns menus for one category, newest first.
func (r *MenuRepo) ListByCategory(ctx context.Context, categoryID uint64) ([]*model.Menu, error) {
	q := `SELECT ` + menuCols + ` FROM menus m
	      JOIN categories c ON c.id = m.category_id
	      WHERE m.category_id = ? ORDER BY m.created_at DESC`
	return r.queryMenus(ctx, q, categoryID)
}

func (r *MenuRepo) queryMenus(ctx context.Context, q string, args ...any) ([]*model.Menu, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Menu
	for rows.Next() {
		m, err := scanMenu(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one menu with its category name, or ErrNotFound.
func (r *MenuRepo) GetByID(ctx context.Context, id uint64) (*model.Menu, error) {
	q := `SELECT ` + menuCols + ` FROM menus m
	      JOIN categories c ON c.id = m.category_id WHERE m.id = ?`
	m, err := scanMenu(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// Create inserts a menu. The category must exist; a missing category surfaces
// as ErrNotFound rather than a foreign key driver error.
func (r *MenuRepo) Create(ctx context.Context, m *model.Menu) error {
	var exists int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories WHERE id = ?`, m.CategoryID).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return ErrNotFound
	}
	const q = `INSERT INTO menus
	           (category_id, name, price, discount_price, marketing_tags, temperature_options, description, image_url, status)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.CategoryID, m.Name, m.Price, m.DiscountPrice,
		m.MarketingTags, m.TempOptions, m.Description, m.ImageURL, m.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)

	const qSelect = `SELECT created_at, updated_at FROM menus WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, m.ID).Scan(&m.CreatedAt, &m.UpdatedAt)
}

// Update overwrites a menu's fields.
func (r *MenuRepo) Update(ctx context.Context, m *model.Menu) error {
	const q = `UPDATE menus SET category_id = ?, name = ?, price = ?, discount_price = ?,
	           marketing_tags = ?, temperature_options = ?, description = ?, image_url = ?,
	           status = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, m.CategoryID, m.Name, m.Price, m.DiscountPrice,
		m.MarketingTags, m.TempOptions, m.Description, m.ImageURL, m.Status, m.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a menu.
func (r *MenuRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM menus WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Counts returns total and active menu counts for the dashboard.
func (r *MenuRepo) Counts(ctx context.Context) (total, active int, err error) {
	const q = `SELECT COUNT(*), COALESCE(SUM(status = ?), 0) FROM menus`
	err = r.db.QueryRowContext(ctx, q, model.StatusActive).Scan(&total, &active)
	return total, active, err
}
