package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/yoonsol/coffee-franchise-site/internal/model"
)

// EventRepo encapsulates all database queries related to events.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo constructs an EventRepo with the provided DB handle.
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

const eventCols = `id, title, description, image_url, start_date, end_date,
	event_type, target_stores, is_active, created_at, updated_at`

func scanEvent(sc interface{ Scan(...any) error }) (*model.Event, error) {
	e := new(model.Event)
	if err := sc.Scan(&e.ID, &e.Title, &e.Description, &e.ImageURL, &e.StartDate, &e.EndDate,
		&e.EventType, &e.TargetStores, &e.IsActive, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return e, nil
}

// List returns all events, newest range first.
func (r *EventRepo) List(ctx context.Context) ([]*model.Event, error) {
	return r.queryEvents(ctx, `SELECT `+eventCols+` FROM events ORDER BY start_date DESC`)
}

// ListActive returns events flagged active whose date range covers now.
func (r *EventRepo) ListActive(ctx context.Context, now time.Time) ([]*model.Event, error) {
	const q = `SELECT ` + eventCols + ` FROM events
	           WHERE is_active = 1 AND start_date <= ? AND end_date >= ?
	           ORDER BY start_date DESC`
	return r.queryEvents(ctx, q, now, now)
}

func (r *EventRepo) queryEvents(ctx context.Context, q string, args ...any) ([]*model.Event, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one event or ErrNotFound.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (*model.Event, error) {
	e, err := scanEvent(r.db.QueryRowContext(ctx, `SELECT `+eventCols+` FROM events WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// Create inserts an event.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) error {
	const q = `INSERT INTO events
	           (title, description, image_url, start_date, end_date, event_type, target_stores, is_active)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, e.Title, e.Description, e.ImageURL, e.StartDate, e.EndDate,
		e.EventType, e.TargetStores, e.IsActive)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)

	const qSelect = `SELECT created_at, updated_at FROM events WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, e.ID).Scan(&e.CreatedAt, &e.UpdatedAt)
}

// Update overwrites an event's fields.
func (r *EventRepo) Update(ctx context.Context, e *model.Event) error {
	const q = `UPDATE events SET title = ?, description = ?, image_url = ?, start_date = ?,
	           end_date = ?, event_type = ?, target_stores = ?, is_active = ?,
	           updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, e.Title, e.Description, e.ImageURL, e.StartDate, e.EndDate,
		e.EventType, e.TargetStores, e.IsActive, e.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an event.
func (r *EventRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Counts returns total and active event counts for the dashboard.
func (r *EventRepo) Counts(ctx context.Context) (total, active int, err error) {
	const q = `SELECT COUNT(*), COALESCE(SUM(is_active = 1), 0) FROM events`
	err = r.db.QueryRowContext(ctx, q).Scan(&total, &active)
	return total, active, err
}
