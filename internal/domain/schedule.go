package domain

import (
	"time"

	"github.com/fideslex/booking-service/pkg/timegrid"
)

// ScheduleSlot is one entry of the global bookable slot catalog
type ScheduleSlot struct {
	ID          int64
	StartMinute timegrid.Minute
	EndMinute   timegrid.Minute
	CreatedAt   time.Time
}

// OnGrid reports whether the slot is a half-hour slot inside business hours.
// Catalog rows that fail this check are never offered.
func (s ScheduleSlot) OnGrid() bool {
	return s.EndMinute-s.StartMinute == SlotMinutes &&
		s.StartMinute >= DayOpen &&
		s.EndMinute <= DayClose
}
