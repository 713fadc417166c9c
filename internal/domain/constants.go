package domain

import "github.com/fideslex/booking-service/pkg/timegrid"

// Business day grid
const (
	SlotMinutes timegrid.Minute = 30
	DayOpen     timegrid.Minute = 9 * 60  // 09:00
	DayClose    timegrid.Minute = 16 * 60 // 16:00
)

// Lunch break bounds
const (
	LunchMinutes  timegrid.Minute = 60
	LunchEarliest timegrid.Minute = 9 * 60  // 09:00
	LunchLatest   timegrid.Minute = 15 * 60 // 15:00
)

// Request listing limits
const (
	DefaultRequestListLimit = 100
	MaxRequestListLimit     = 200
)

// DateFormat YYYY-MM-DD
const DateFormat = timegrid.DateFormat
