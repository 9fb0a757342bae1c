package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestPosterStatus(t *testing.T) {
	start := day("2026-03-01")
	end := day("2026-03-31")

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"before range", day("2026-02-15"), PosterWaiting},
		{"day before start", day("2026-02-28"), PosterWaiting},
		{"first day", day("2026-03-01"), PosterActive},
		{"mid range", day("2026-03-15"), PosterActive},
		{"last day", day("2026-03-31"), PosterActive},
		{"day after end", day("2026-04-01"), PosterExpired},
		{"long after", day("2027-01-01"), PosterExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PosterStatus(start, end, tt.now))
		})
	}
}

func TestNewMenuRefresh(t *testing.T) {
	n := &NewMenu{StartDate: day("2026-03-01"), EndDate: day("2026-03-31"), Status: PosterWaiting}
	n.Refresh(day("2026-03-10"))
	assert.Equal(t, PosterActive, n.Status)

	n.Refresh(day("2026-05-01"))
	assert.Equal(t, PosterExpired, n.Status)
}

func TestPublicViewFlags(t *testing.T) {
	m := Menu{MarketingTags: StringList{TagBest, TagNew}, Status: StatusActive}
	v := m.PublicView()
	assert.True(t, v.IsPopular)
	assert.True(t, v.IsNew)
	assert.True(t, v.IsAvailable)

	m = Menu{MarketingTags: StringList{TagEvent}, Status: StatusInactive}
	v = m.PublicView()
	assert.False(t, v.IsPopular)
	assert.False(t, v.IsNew)
	assert.False(t, v.IsAvailable)
}

func TestSessionAcceptsRegistrations(t *testing.T) {
	s := StartupSession{
		Status:            SessionAccepting,
		RegistrationStart: day("2026-03-01"),
		RegistrationEnd:   day("2026-03-20"),
	}
	assert.True(t, s.AcceptsRegistrations(day("2026-03-10")))
	assert.True(t, s.AcceptsRegistrations(day("2026-03-01")))
	assert.True(t, s.AcceptsRegistrations(day("2026-03-20")))
	assert.False(t, s.AcceptsRegistrations(day("2026-02-28")))
	assert.False(t, s.AcceptsRegistrations(day("2026-03-21")))

	s.Status = SessionWaiting
	assert.False(t, s.AcceptsRegistrations(day("2026-03-10")))
}
