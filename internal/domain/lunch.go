package domain

import (
	"time"

	"github.com/fideslex/booking-service/pkg/timegrid"
)

// LunchBreak is a professional's daily hour without appointments
type LunchBreak struct {
	ProfessionalID string
	StartMinute    timegrid.Minute
	UpdatedAt      time.Time
}

// Window returns the half-open exclusion interval [start, start+60)
func (l *LunchBreak) Window() ExclusionWindow {
	return ExclusionWindow{Start: l.StartMinute, End: l.StartMinute + LunchMinutes}
}

// ExclusionWindow is a half-open minute interval removed from availability
type ExclusionWindow struct {
	Start timegrid.Minute
	End   timegrid.Minute
}

// Contains reports whether m falls inside the window
func (w ExclusionWindow) Contains(m timegrid.Minute) bool {
	return w.Start <= m && m < w.End
}
