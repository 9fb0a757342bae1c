// Package queue defines message payloads exchanged over RabbitMQ and the
// background consumer that turns them into notifications.
package queue

// InquiryReceivedEvent is published when a visitor submits a franchise
// inquiry. It carries enough for downstream consumers to log and notify
// without touching the primary database.
type InquiryReceivedEvent struct {
	InquiryID  uint64 `json:"inquiry_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Region     string `json:"region"`
	Message    string `json:"message"`
	ReceivedAt string `json:"received_at"`
}

// SessionSignupEvent is published when a visitor registers for a startup
// information session.
type SessionSignupEvent struct {
	ApplicantID  uint64 `json:"applicant_id"`
	SessionID    uint64 `json:"session_id"`
	Round        int    `json:"round"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Participants int    `json:"participants"`
	ReceivedAt   string `json:"received_at"`
}
