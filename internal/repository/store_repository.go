package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/yoonsol/coffee-franchise-site/internal/model"
)

// StoreRepo encapsulates all database queries related to stores.
type StoreRepo struct {
	db *sql.DB
}

// NewStoreRepo constructs a StoreRepo with the provided DB handle.
func NewStoreRepo(db *sql.DB) *StoreRepo {
	return &StoreRepo{db: db}
}

const storeCols = `id, name, region, address, additional_address, phone,
	operating_status, store_type, options, images, created_at, updated_at`

func scanStore(sc interface{ Scan(...any) error }) (*model.Store, error) {
	s := new(model.Store)
	var addAddr sql.NullString
	err := sc.Scan(&s.ID, &s.Name, &s.Region, &s.Address, &addAddr, &s.Phone,
		&s.OperatingStatus, &s.StoreType, &s.Options, &s.Images, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.AdditionalAddress = addAddr.String
	return s, nil
}

// List returns every store for the admin table, ordered region asc, name asc.
func (r *StoreRepo) List(ctx context.Context) ([]*model.Store, error) {
	return r.queryStores(ctx, `SELECT `+storeCols+` FROM stores ORDER BY region ASC, name ASC`)
}

// ListPublic returns stores for the public site. CLOSED stores are filtered
// out; everything else (OPEN, PREPARING, VACATION) is shown.
func (r *StoreRepo) ListPublic(ctx context.Context) ([]*model.Store, error) {
	const q = `SELECT ` + storeCols + ` FROM stores
	           WHERE operating_status <> ? ORDER BY region ASC, name ASC`
	return r.queryStores(ctx, q, model.StoreClosed)
}

func (r *StoreRepo) queryStores(ctx context.Context, q string, args ...any) ([]*model.Store, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Store
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one store or ErrNotFound.
func (r *StoreRepo) GetByID(ctx context.Context, id uint64) (*model.Store, error) {
	s, err := scanStore(r.db.QueryRowContext(ctx, `SELECT `+storeCols+` FROM stores WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// Create inserts a store.
func (r *StoreRepo) Create(ctx context.Context, s *model.Store) error {
	const q = `INSERT INTO stores
	           (name, region, address, additional_address, phone, operating_status, store_type, options, images)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Name, s.Region, s.Address, nullStr(s.AdditionalAddress),
		s.Phone, s.OperatingStatus, s.StoreType, s.Options, s.Images)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)

	const qSelect = `SELECT created_at, updated_at FROM stores WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, s.ID).Scan(&s.CreatedAt, &s.UpdatedAt)
}

// Update overwrites a store's fields.
func (r *StoreRepo) Update(ctx context.Context, s *model.Store) error {
	const q = `UPDATE stores SET name = ?, region = ?, address = ?, additional_address = ?,
	           phone = ?, operating_status = ?, store_type = ?, options = ?, images = ?,
	           updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, s.Name, s.Region, s.Address, nullStr(s.AdditionalAddress),
		s.Phone, s.OperatingStatus, s.StoreType, s.Options, s.Images, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a store.
func (r *StoreRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stores WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Counts returns total and open store counts for the dashboard.
func (r *StoreRepo) Counts(ctx context.Context) (total, open int, err error) {
	const q = `SELECT COUNT(*), COALESCE(SUM(operating_status = ?), 0) FROM stores`
	err = r.db.QueryRowContext(ctx, q, model.StoreOpen).Scan(&total, &open)
	return total, open, err
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
