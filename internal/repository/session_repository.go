package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/yoonsol/coffee-franchise-site/internal/model"
)

// SessionRepo encapsulates database queries for startup info sessions and
// their applicants.
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo constructs a SessionRepo with the provided DB handle.
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

const sessionCols = `s.id, s.round, s.session_date, s.session_time, s.location,
	s.additional_location, s.registration_start, s.registration_end, s.status,
	s.created_at, s.updated_at`

func scanSession(sc interface{ Scan(...any) error }, withCount bool) (*model.StartupSession, error) {
	s := new(model.StartupSession)
	var addLoc sql.NullString
	dests := []any{&s.ID, &s.Round, &s.SessionDate, &s.SessionTime, &s.Location,
		&addLoc, &s.RegistrationStart, &s.RegistrationEnd, &s.Status,
		&s.CreatedAt, &s.UpdatedAt}
	if withCount {
		dests = append(dests, &s.ApplicantCount)
	}
	if err := sc.Scan(dests...); err != nil {
		return nil, err
	}
	s.AdditionalLocation = addLoc.String
	return s, nil
}

// List returns all sessions newest first, each with its applicant count.
func (r *SessionRepo) List(ctx context.Context) ([]*model.StartupSession, error) {
	const q = `SELECT ` + sessionCols + `,
	                  (SELECT COUNT(*) FROM session_applicants a WHERE a.session_id = s.id) AS applicant_count
	           FROM startup_sessions s ORDER BY s.session_date DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.StartupSession
	for rows.Next() {
		s, err := scanSession(rows, true)
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

// ListAccepting returns sessions open for registration at time now, for the
// public signup page.
func (r *SessionRepo) ListAccepting(ctx context.Context, now time.Time) ([]*model.StartupSession, error) {
	const q = `SELECT ` + sessionCols + `,
	                  (SELECT COUNT(*) FROM session_applicants a WHERE a.session_id = s.id) AS applicant_count
	           FROM startup_sessions s
	           WHERE s.status = ? AND s.registration_start <= ? AND s.registration_end >= ?
	           ORDER BY s.session_date ASC`
	rows, err := r.db.QueryContext(ctx, q, model.SessionAccepting, now, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.StartupSession
	for rows.Next() {
		s, err := scanSession(rows, true)
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

// GetByID fetches one session with its applicant count, or ErrNotFound.
func (r *SessionRepo) GetByID(ctx context.Context, id uint64) (*model.StartupSession, error) {
	const q = `SELECT ` + sessionCols + `,
	                  (SELECT COUNT(*) FROM session_applicants a WHERE a.session_id = s.id) AS applicant_count
	           FROM startup_sessions s WHERE s.id = ?`
	s, err := scanSession(r.db.QueryRowContext(ctx, q, id), true)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// roundTaken reports whether another session already uses round.
func (r *SessionRepo) roundTaken(ctx context.Context, round int, excludeID uint64) (bool, error) {
	const q = `SELECT COUNT(*) FROM startup_sessions WHERE round = ? AND id <> ?`
	var n int
	if err := r.db.QueryRowContext(ctx, q, round, excludeID).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts a session. Duplicate rounds are rejected with
// ErrDuplicateRound before the insert.
func (r *SessionRepo) Create(ctx context.Context, s *model.StartupSession) error {
	taken, err := r.roundTaken(ctx, s.Round, 0)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateRound
	}
	const q = `INSERT INTO startup_sessions
	           (round, session_date, session_time, location, additional_location,
	            registration_start, registration_end, status)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Round, s.SessionDate, s.SessionTime, s.Location,
		nullStr(s.AdditionalLocation), s.RegistrationStart, s.RegistrationEnd, s.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)

	const qSelect = `SELECT created_at, updated_at FROM startup_sessions WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, s.ID).Scan(&s.CreatedAt, &s.UpdatedAt)
}

// Update overwrites a session's schedule and status. The round is immutable
// after creation, matching the admin form.
func (r *SessionRepo) Update(ctx context.Context, s *model.StartupSession) error {
	const q = `UPDATE startup_sessions SET session_date = ?, session_time = ?, location = ?,
	           additional_location = ?, registration_start = ?, registration_end = ?, status = ?,
	           updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, s.SessionDate, s.SessionTime, s.Location,
		nullStr(s.AdditionalLocation), s.RegistrationStart, s.RegistrationEnd, s.Status, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a session and its applicants in one transaction.
func (r *SessionRepo) Delete(ctx context.Context, id uint64) error {
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

	if _, err = tx.ExecContext(ctx, `DELETE FROM session_applicants WHERE session_id = ?`, id); err != nil {
		return err
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, `DELETE FROM startup_sessions WHERE id = ?`, id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrNotFound
		return err
	}
	return nil
}

// Counts returns total and accepting session counts for the dashboard.
func (r *SessionRepo) Counts(ctx context.Context) (total, accepting int, err error) {
	const q = `SELECT COUNT(*), COALESCE(SUM(status = ?), 0) FROM startup_sessions`
	err = r.db.QueryRowContext(ctx, q, model.SessionAccepting).Scan(&total, &accepting)
	return total, accepting, err
}

// ---- Applicants ----

const applicantCols = `id, session_id, name, phone, email, participants, created_at`

// ListApplicants returns a session's applicants, newest first.
func (r *SessionRepo) ListApplicants(ctx context.Context, sessionID uint64) ([]*model.SessionApplicant, error) {
	const q = `SELECT ` + applicantCols + ` FROM session_applicants
	           WHERE session_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.SessionApplicant
	for rows.Next() {
		a := new(model.SessionApplicant)
		if err := rows.Scan(&a.ID, &a.SessionID, &a.Name, &a.Phone, &a.Email, &a.Participants, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateApplicant registers a signup against a session. The registration
// window is re-validated against the stored session row so a stale public
// page cannot sign up for a closed round.
func (r *SessionRepo) CreateApplicant(ctx context.Context, a *model.SessionApplicant, now time.Time) error {
	s, err := r.GetByID(ctx, a.SessionID)
	if err != nil {
		return err
	}
	if !s.AcceptsRegistrations(now) {
		return ErrRegistrationClosed
	}
	const q = `INSERT INTO session_applicants (session_id, name, phone, email, participants)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, a.SessionID, a.Name, a.Phone, a.Email, a.Participants)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)

	const qSelect = `SELECT created_at FROM session_applicants WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, a.ID).Scan(&a.CreatedAt)
}

// DeleteApplicant removes one applicant record.
func (r *SessionRepo) DeleteApplicant(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM session_applicants WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
