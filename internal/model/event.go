package model

import "time"

// Event is a promotional post with a display date range. TargetStores is an
// optional list of store ids the event applies to; empty means brand-wide.
type Event struct {
	ID           uint64     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"imageUrl"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      time.Time  `json:"endDate"`
	EventType    string     `json:"eventType"`
	TargetStores StringList `json:"targetStores"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// FAQ is a question/answer post grouped by category.
type FAQ struct {
	ID        uint64    `json:"id"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
