package model

import "time"

// NewMenu is a new-menu poster shown on the home page for a date range.
// Status is a pure function of the current time and the range; it is stored
// for listing convenience but recomputed whenever the record is read.
type NewMenu struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	ImageURL  string    `json:"imageUrl"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PosterStatus computes the display status of a poster at time now:
// EXPIRED when the range has passed, ACTIVE while now is inside the range
// (inclusive on both ends), WAITING before it starts.
func PosterStatus(start, end, now time.Time) string {
	if end.Before(now) {
		return PosterExpired
	}
	if !start.After(now) {
		return PosterActive
	}
	return PosterWaiting
}

// Refresh recomputes Status from the stored date range.
func (n *NewMenu) Refresh(now time.Time) {
	n.Status = PosterStatus(n.StartDate, n.EndDate, now)
}
