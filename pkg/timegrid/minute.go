package timegrid

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay number of minutes in a calendar day.
const MinutesPerDay = 24 * 60

// Minute is a time of day expressed in minutes since local midnight, in [0, 1440).
type Minute int

// Valid reports whether m lies inside a day.
func (m Minute) Valid() bool {
	return m >= 0 && m < MinutesPerDay
}

// Aligned reports whether m is a multiple of step.
func (m Minute) Aligned(step Minute) bool {
	return step > 0 && m%step == 0
}

// String formats m as HH:MM.
func (m Minute) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// ParseMinute parses an HH:MM string.
func ParseMinute(s string) (Minute, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("timegrid: invalid time %q, expected HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("timegrid: invalid hour in %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("timegrid: invalid minute in %q", s)
	}
	return Minute(h*60 + m), nil
}
