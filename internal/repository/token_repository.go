package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// TokenRepo stores refresh tokens for admin sessions. Only SHA-256 hashes of
// the raw tokens are persisted.
type TokenRepo struct {
	db *sql.DB
}

// NewTokenRepo constructs a TokenRepo with the provided DB handle.
func NewTokenRepo(db *sql.DB) *TokenRepo {
	return &TokenRepo{db: db}
}

// StoreRefresh saves a refresh token hash with its expiry.
func (r *TokenRepo) StoreRefresh(ctx context.Context, adminID uint64, tokenHash string, expiresAt time.Time) error {
	const q = `INSERT INTO refresh_tokens (admin_id, token_hash, expires_at) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, adminID, tokenHash, expiresAt)
	return err
}

// ValidateRefresh returns the owning admin id when the hash matches an
// unexpired, unrevoked token.
func (r *TokenRepo) ValidateRefresh(ctx context.Context, tokenHash string) (uint64, error) {
	const q = `SELECT admin_id FROM refresh_tokens
	           WHERE token_hash = ? AND revoked_at IS NULL AND expires_at > UTC_TIMESTAMP()`
	var adminID uint64
	if err := r.db.QueryRowContext(ctx, q, tokenHash).Scan(&adminID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return adminID, nil
}

// RevokeByHash marks one token revoked.
func (r *TokenRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
	const q = `UPDATE refresh_tokens SET revoked_at = UTC_TIMESTAMP()
	           WHERE token_hash = ? AND revoked_at IS NULL`
	_, err := r.db.ExecContext(ctx, q, tokenHash)
	return err
}

// RevokeAllForAdmin revokes every live token for an admin (logout all).
func (r *TokenRepo) RevokeAllForAdmin(ctx context.Context, adminID uint64) error {
	const q = `UPDATE refresh_tokens SET revoked_at = UTC_TIMESTAMP()
	           WHERE admin_id = ? AND revoked_at IS NULL`
	_, err := r.db.ExecContext(ctx, q, adminID)
	return err
}
