// Package timegrid maps calendar dates and minute-of-day offsets onto absolute
// instants in the business time zone.
package timegrid

import (
	"fmt"
	"time"
)

// DateFormat is the wire format of calendar dates.
const DateFormat = "2006-01-02"

// Grid resolves dates in a fixed location.
type Grid struct {
	loc *time.Location
}

// New returns a grid for loc. A nil loc means time.Local.
func New(loc *time.Location) *Grid {
	if loc == nil {
		loc = time.Local
	}
	return &Grid{loc: loc}
}

// Load returns a grid for an IANA zone name such as "Europe/Madrid".
func Load(name string) (*Grid, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("timegrid: load location %q: %w", name, err)
	}
	return New(loc), nil
}

// Location returns the business location.
func (g *Grid) Location() *time.Location {
	return g.loc
}

// ParseDate parses YYYY-MM-DD as local midnight.
func (g *Grid) ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateFormat, s, g.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("timegrid: invalid date %q: %w", s, err)
	}
	return d, nil
}

// FormatDate formats the calendar day of date.
func (g *Grid) FormatDate(date time.Time) string {
	return g.midnight(date).Format(DateFormat)
}

// DayRange returns [local midnight, local midnight + 24h) for the calendar day of date.
// Only the year, month and day of date are used.
func (g *Grid) DayRange(date time.Time) (time.Time, time.Time) {
	start := g.midnight(date)
	return start, start.Add(24 * time.Hour)
}

// ToAbsolute returns the instant minute minutes after the local midnight of date.
func (g *Grid) ToAbsolute(date time.Time, minute Minute) time.Time {
	start, _ := g.DayRange(date)
	return start.Add(time.Duration(minute) * time.Minute)
}

// IsWeekend reports whether date falls on Saturday or Sunday.
func (g *Grid) IsWeekend(date time.Time) bool {
	switch g.midnight(date).Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return false
}

// MinuteOf returns the minute of day of t in the business location.
func (g *Grid) MinuteOf(t time.Time) Minute {
	lt := t.In(g.loc)
	return Minute(lt.Hour()*60 + lt.Minute())
}

func (g *Grid) midnight(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, g.loc)
}
