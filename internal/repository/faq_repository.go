package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/yoonsol/coffee-franchise-site/internal/model"
)

// FAQRepo encapsulates all database queries related to FAQs.
type FAQRepo struct {
	db *sql.DB
}

// NewFAQRepo constructs a FAQRepo with the provided DB handle.
func NewFAQRepo(db *sql.DB) *FAQRepo {
	return &FAQRepo{db: db}
}

const faqCols = `id, category, title, content, status, created_at, updated_at`

func scanFAQ(sc interface{ Scan(...any) error }) (*model.FAQ, error) {
	f := new(model.FAQ)
	if err := sc.Scan(&f.ID, &f.Category, &f.Title, &f.Content, &f.Status,
		&f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return f, nil
}

// List returns all FAQs for the admin table, grouped by category then newest
// first.
func (r *FAQRepo) List(ctx context.Context) ([]*model.FAQ, error) {
	return r.queryFAQs(ctx, `SELECT `+faqCols+` FROM faqs ORDER BY category ASC, created_at DESC`)
}

// ListPublic returns active FAQs, optionally filtered by category.
func (r *FAQRepo) ListPublic(ctx context.Context, category string) ([]*model.FAQ, error) {
	if category != "" {
		const q = `SELECT ` + faqCols + ` FROM faqs
		           WHERE status = ? AND category = ? ORDER BY created_at DESC`
		return r.queryFAQs(ctx, q, model.StatusActive, category)
	}
	const q = `SELECT ` + faqCols + ` FROM faqs
	           WHERE status = ? ORDER BY category ASC, created_at DESC`
	return r.queryFAQs(ctx, q, model.StatusActive)
}

func (r *FAQRepo) queryFAQs(ctx context.Context, q string, args ...any) ([]*model.FAQ, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.FAQ
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CategoryCounts returns the number of active FAQs per category, for the
// public FAQ page tabs.
func (r *FAQRepo) CategoryCounts(ctx context.Context) (map[string]int, error) {
	const q = `SELECT category, COUNT(*) FROM faqs WHERE status = ? GROUP BY category`
	rows, err := r.db.QueryContext(ctx, q, model.StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var cat string
		var n int
		if err := rows.Scan(&cat, &n); err != nil {
			return nil, err
		}
		counts[cat] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// GetByID fetches one FAQ or ErrNotFound.
func (r *FAQRepo) GetByID(ctx context.Context, id uint64) (*model.FAQ, error) {
	f, err := scanFAQ(r.db.QueryRowContext(ctx, `SELECT `+faqCols+` FROM faqs WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// Create inserts a FAQ.
func (r *FAQRepo) Create(ctx context.Context, f *model.FAQ) error {
	const q = `INSERT INTO faqs (category, title, content, status) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, f.Category, f.Title, f.Content, f.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)

	const qSelect = `SELECT created_at, updated_at FROM faqs WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, f.ID).Scan(&f.CreatedAt, &f.UpdatedAt)
}

// Update overwrites a FAQ's fields.
func (r *FAQRepo) Update(ctx context.Context, f *model.FAQ) error {
	const q = `UPDATE faqs SET category = ?, title = ?, content = ?, status = ?,
	           updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, f.Category, f.Title, f.Content, f.Status, f.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a FAQ.
func (r *FAQRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM faqs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Counts returns total and active FAQ counts for the dashboard.
func (r *FAQRepo) Counts(ctx context.Context) (total, active int, err error) {
	const q = `SELECT COUNT(*), COALESCE(SUM(status = ?), 0) FROM faqs`
	err = r.db.QueryRowContext(ctx, q, model.StatusActive).Scan(&total, &active)
	return total, active, err
}
