package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/yoonsol/coffee-franchise-site/internal/model"
)

// PosterRepo encapsulates database queries for new-menu posters. Poster
// status is derived from the date range; List recomputes it on read and
// writes back any transition so the stored column stays in step with time.
type PosterRepo struct {
	db *sql.DB
}

// NewPosterRepo constructs a PosterRepo with the provided DB handle.
func NewPosterRepo(db *sql.DB) *PosterRepo {
	return &PosterRepo{db: db}
}

const newMenuCols = `id, title, start_date, end_date, image_url, status, created_at, updated_at`

func scanNewMenu(sc interface{ Scan(...any) error }) (*model.NewMenu, error) {
	n := new(model.NewMenu)
	if err := sc.Scan(&n.ID, &n.Title, &n.StartDate, &n.EndDate, &n.ImageURL, &n.Status,
		&n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	return n, nil
}

// List returns all posters, newest range first, with status refreshed as of
// now. Transitions detected on read are persisted.
func (r *PosterRepo) List(ctx context.Context, now time.Time) ([]*model.NewMenu, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+newMenuCols+` FROM new_menus ORDER BY start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.NewMenu
	for rows.Next() {
		n, err := scanNewMenu(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, n := range out {
		stored := n.Status
		n.Refresh(now)
		if n.Status != stored {
			if err := r.updateStatus(ctx, n.ID, n.Status); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// ListActive returns posters whose derived status is ACTIVE at time now, for
// the public home page.
func (r *PosterRepo) ListActive(ctx context.Context, now time.Time) ([]*model.NewMenu, error) {
	const q = `SELECT ` + newMenuCols + ` FROM new_menus
	           WHERE start_date <= ? AND end_date >= ? ORDER BY start_date DESC`
	rows, err := r.db.QueryContext(ctx, q, now, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.NewMenu
	for rows.Next() {
		n, err := scanNewMenu(rows)
		if err != nil {
			return nil, err
		}
		n.Refresh(now)
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one poster with refreshed status, or ErrNotFound.
func (r *PosterRepo) GetByID(ctx context.Context, id uint64, now time.Time) (*model.NewMenu, error) {
	n, err := scanNewMenu(r.db.QueryRowContext(ctx, `SELECT `+newMenuCols+` FROM new_menus WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	n.Refresh(now)
	return n, nil
}

// Create inserts a poster with its initial derived status.
func (r *PosterRepo) Create(ctx context.Context, n *model.NewMenu, now time.Time) error {
	n.Refresh(now)
	const q = `INSERT INTO new_menus (title, start_date, end_date, image_url, status) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, n.Title, n.StartDate, n.EndDate, n.ImageURL, n.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	n.ID = uint64(id)

	const qSelect = `SELECT created_at, updated_at FROM new_menus WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, n.ID).Scan(&n.CreatedAt, &n.UpdatedAt)
}

// Update overwrites a poster and rederives its status from the new range.
func (r *PosterRepo) Update(ctx context.Context, n *model.NewMenu, now time.Time) error {
	n.Refresh(now)
	const q = `UPDATE new_menus SET title = ?, start_date = ?, end_date = ?, image_url = ?,
	           status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, n.Title, n.StartDate, n.EndDate, n.ImageURL, n.Status, n.ID)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a poster.
func (r *PosterRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM new_menus WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PosterRepo) updateStatus(ctx context.Context, id uint64, status string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE new_menus SET status = ? WHERE id = ?`, status, id)
	return err
}
