package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/yoonsol/coffee-franchise-site/internal/model"
)

// InquiryRepo encapsulates all database queries related to franchise
// inquiries. Creation happens from the public site; the admin panel reads,
// updates status/response and deletes.
type InquiryRepo struct {
	db *sql.DB
}

// NewInquiryRepo constructs an InquiryRepo with the provided DB handle.
func NewInquiryRepo(db *sql.DB) *InquiryRepo {
	return &InquiryRepo{db: db}
}

const inquiryCols = `id, name, phone, email, region, age_group, store_ownership,
	budget, brand_awareness, available_time, content, status, response,
	created_at, updated_at`

func scanInquiry(sc interface{ Scan(...any) error }) (*model.FranchiseInquiry, error) {
	q := new(model.FranchiseInquiry)
	var budget, response sql.NullString
	err := sc.Scan(&q.ID, &q.Name, &q.Phone, &q.Email, &q.Region, &q.AgeGroup, &q.StoreOwnership,
		&budget, &q.BrandAwareness, &q.AvailableTime, &q.Content, &q.Status, &response,
		&q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	q.Budget = budget.String
	if response.Valid {
		v := response.String
		q.Response = &v
	}
	return q, nil
}

// List returns all inquiries, newest first.
func (r *InquiryRepo) List(ctx context.Context) ([]*model.FranchiseInquiry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+inquiryCols+` FROM franchise_inquiries ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.FranchiseInquiry
	for rows.Next() {
		q, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one inquiry or ErrNotFound.
func (r *InquiryRepo) GetByID(ctx context.Context, id uint64) (*model.FranchiseInquiry, error) {
	q, err := scanInquiry(r.db.QueryRowContext(ctx, `SELECT `+inquiryCols+` FROM franchise_inquiries WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return q, nil
}

// Create inserts a new lead with status PENDING.
func (r *InquiryRepo) Create(ctx context.Context, q *model.FranchiseInquiry) error {
	const ins = `INSERT INTO franchise_inquiries
	             (name, phone, email, region, age_group, store_ownership, budget,
	              brand_awareness, available_time, content, status)
	             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	q.Status = model.InquiryPending
	res, err := r.db.ExecContext(ctx, ins, q.Name, q.Phone, q.Email, q.Region, q.AgeGroup,
		q.StoreOwnership, nullStr(q.Budget), q.BrandAwareness, q.AvailableTime, q.Content, q.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	q.ID = uint64(id)

	const qSelect = `SELECT created_at, updated_at FROM franchise_inquiries WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, q.ID).Scan(&q.CreatedAt, &q.UpdatedAt)
}

// UpdateStatus sets status and the optional admin response.
func (r *InquiryRepo) UpdateStatus(ctx context.Context, id uint64, status string, response *string) error {
	const q = `UPDATE franchise_inquiries SET status = ?, response = ?,
	           updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, status, response, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an inquiry.
func (r *InquiryRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM franchise_inquiries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Counts returns total and pending inquiry counts for the dashboard.
func (r *InquiryRepo) Counts(ctx context.Context) (total, pending int, err error) {
	const q = `SELECT COUNT(*), COALESCE(SUM(status = ?), 0) FROM franchise_inquiries`
	err = r.db.QueryRowContext(ctx, q, model.InquiryPending).Scan(&total, &pending)
	return total, pending, err
}

// Recent returns the n newest inquiries for the dashboard activity feed.
func (r *InquiryRepo) Recent(ctx context.Context, n int) ([]*model.FranchiseInquiry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+inquiryCols+` FROM franchise_inquiries ORDER BY created_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.FranchiseInquiry
	for rows.Next() {
		q, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
