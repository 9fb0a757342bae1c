package model

import "time"

// StartupSession is a scheduled franchise info session. Round is unique
// across all sessions.
type StartupSession struct {
	ID                 uint64    `json:"id"`
	Round              int       `json:"round"`
	SessionDate        time.Time `json:"sessionDate"`
	SessionTime        string    `json:"sessionTime"`
	Location           string    `json:"location"`
	AdditionalLocation string    `json:"additionalLocation,omitempty"`
	RegistrationStart  time.Time `json:"registrationStart"`
	RegistrationEnd    time.Time `json:"registrationEnd"`
	Status             string    `json:"status"`
	ApplicantCount     int       `json:"applicantCount"` // populated on listings
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// AcceptsRegistrations reports whether a public signup is allowed at time now.
func (s StartupSession) AcceptsRegistrations(now time.Time) bool {
	if s.Status != SessionAccepting {
		return false
	}
	return !now.Before(s.RegistrationStart) && !now.After(s.RegistrationEnd)
}

// SessionApplicant is a registrant of a startup session.
type SessionApplicant struct {
	ID           uint64    `json:"id"`
	SessionID    uint64    `json:"sessionId"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Participants int       `json:"participants"`
	CreatedAt    time.Time `json:"createdAt"`
}
