package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoonsol/coffee-franchise-site/internal/model"
)

func newSessionMock(t *testing.T) (*SessionRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSessionRepo(db), mock
}

func sessionRow(id uint64, round int, status string, regStart, regEnd time.Time) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "round", "session_date", "session_time", "location", "additional_location",
		"registration_start", "registration_end", "status", "created_at", "updated_at",
		"applicant_count",
	}).AddRow(id, round, regEnd.AddDate(0, 0, 7), "14:00", "HEADQUARTERS", nil,
		regStart, regEnd, status, now, now, 3)
}

func TestSessionCreateRejectsDuplicateRound(t *testing.T) {
	repo, mock := newSessionMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM startup_sessions WHERE round = ? AND id <> ?")).
		WithArgs(5, 0).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := repo.Create(context.Background(), &model.StartupSession{Round: 5, Status: model.SessionWaiting})
	assert.ErrorIs(t, err, ErrDuplicateRound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateApplicantRejectsClosedWindow(t *testing.T) {
	repo, mock := newSessionMock(t)
	now := time.Now().UTC()

	// Window ended a week ago.
	mock.ExpectQuery("FROM startup_sessions s WHERE s.id").
		WithArgs(9).
		WillReturnRows(sessionRow(9, 4, model.SessionAccepting,
			now.AddDate(0, 0, -21), now.AddDate(0, 0, -7)))

	a := &model.SessionApplicant{SessionID: 9, Name: "Lee", Participants: 2}
	err := repo.CreateApplicant(context.Background(), a, now)
	assert.ErrorIs(t, err, ErrRegistrationClosed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateApplicantRejectsNonAcceptingStatus(t *testing.T) {
	repo, mock := newSessionMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery("FROM startup_sessions s WHERE s.id").
		WithArgs(9).
		WillReturnRows(sessionRow(9, 4, model.SessionWaiting,
			now.AddDate(0, 0, -7), now.AddDate(0, 0, 7)))

	err := repo.CreateApplicant(context.Background(), &model.SessionApplicant{SessionID: 9}, now)
	assert.ErrorIs(t, err, ErrRegistrationClosed)
}

func TestCreateApplicantWithinWindow(t *testing.T) {
	repo, mock := newSessionMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery("FROM startup_sessions s WHERE s.id").
		WithArgs(9).
		WillReturnRows(sessionRow(9, 4, model.SessionAccepting,
			now.AddDate(0, 0, -7), now.AddDate(0, 0, 7)))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO session_applicants (session_id, name, phone, email, participants)")).
		WithArgs(9, "Lee", "010-9999-0000", "lee@example.com", 2).
		WillReturnResult(sqlmock.NewResult(31, 1))
	mock.ExpectQuery("SELECT created_at FROM session_applicants WHERE id = ?").
		WithArgs(31).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	a := &model.SessionApplicant{SessionID: 9, Name: "Lee", Phone: "010-9999-0000", Email: "lee@example.com", Participants: 2}
	require.NoError(t, repo.CreateApplicant(context.Background(), a, now))
	assert.EqualValues(t, 31, a.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionDeleteRemovesApplicantsFirst(t *testing.T) {
	repo, mock := newSessionMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM session_applicants WHERE session_id = ?").
		WithArgs(6).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("DELETE FROM startup_sessions WHERE id = ?").
		WithArgs(6).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(context.Background(), 6))
	assert.NoError(t, mock.ExpectationsWereMet())
}
