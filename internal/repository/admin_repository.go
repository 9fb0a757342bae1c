package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/yoonsol/coffee-franchise-site/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// AdminRepo encapsulates database queries for back-office admin accounts.
// Accounts are provisioned out of band (cmd/create-admin); there is no
// self-serve registration.
type AdminRepo struct {
	db *sql.DB
}

// NewAdminRepo constructs an AdminRepo with the provided DB handle.
func NewAdminRepo(db *sql.DB) *AdminRepo {
	return &AdminRepo{db: db}
}

const adminCols = `id, username, password_hash, name, status, created_at, updated_at`

func scanAdmin(sc interface{ Scan(...any) error }) (*model.Admin, error) {
	a := new(model.Admin)
	if err := sc.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Name, &a.Status,
		&a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return a, nil
}

// GetByUsername fetches an admin by username or ErrNotFound. Status is not
// filtered here; callers decide how to treat INACTIVE accounts.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	a, err := scanAdmin(r.db.QueryRowContext(ctx,
		`SELECT `+adminCols+` FROM admins WHERE username = ?`, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// GetByID fetches an admin by id or ErrNotFound.
func (r *AdminRepo) GetByID(ctx context.Context, id uint64) (*model.Admin, error) {
	a, err := scanAdmin(r.db.QueryRowContext(ctx,
		`SELECT `+adminCols+` FROM admins WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// IsActive reports whether the admin row exists and is ACTIVE. The admin
// middleware calls this on every authenticated request so that deactivating
// an account cuts access immediately, not at token expiry.
func (r *AdminRepo) IsActive(ctx context.Context, id uint64) (bool, error) {
	const q = `SELECT COUNT(*) FROM admins WHERE id = ? AND status = ?`
	var n int
	if err := r.db.QueryRowContext(ctx, q, id, model.StatusActive).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create provisions an admin account with a bcrypt-hashed password.
func (r *AdminRepo) Create(ctx context.Context, username, password, name string, cost int) (uint64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return 0, err
	}
	const q = `INSERT INTO admins (username, password_hash, name, status) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, username, string(hash), name, model.StatusActive)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// UpdatePassword replaces the stored hash.
func (r *AdminRepo) UpdatePassword(ctx context.Context, id uint64, password string, cost int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return err
	}
	const q = `UPDATE admins SET password_hash = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, string(hash), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
