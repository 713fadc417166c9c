package get_available_slots

import (
	"sort"
	"time"

	"github.com/fideslex/booking-service/internal/domain"
)

// calculateAvailableSlots вычисляет свободные слоты дня.
// Слот пропускается, если он вне сетки, попадает в обед, уже занят
// неотмененной записью или заканчивается не позже now.
func calculateAvailableSlots(
	grid Grid,
	date time.Time,
	catalog []*domain.ScheduleSlot,
	lunch *domain.ExclusionWindow,
	appointments []*domain.Appointment,
	now time.Time,
) []Slot {
	// Занятые моменты начала; отмененные записи слот не занимают
	occupied := make(map[int64]struct{}, len(appointments))
	for _, a := range appointments {
		if a.OccupiesSlot() {
			occupied[a.StartAt.Unix()] = struct{}{}
		}
	}

	valid := make([]*domain.ScheduleSlot, 0, len(catalog))
	for _, s := range catalog {
		if s.OnGrid() {
			valid = append(valid, s)
		}
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].StartMinute < valid[j].StartMinute
	})

	slots := make([]Slot, 0, len(valid))
	seen := make(map[int64]struct{}, len(valid))
	for _, s := range valid {
		if lunch != nil && lunch.Contains(s.StartMinute) {
			continue
		}

		start := grid.ToAbsolute(date, s.StartMinute)
		if _, ok := occupied[start.Unix()]; ok {
			continue
		}
		if _, dup := seen[start.Unix()]; dup {
			continue
		}

		end := grid.ToAbsolute(date, s.EndMinute)
		if !end.After(now) {
			continue
		}

		seen[start.Unix()] = struct{}{}
		slots = append(slots, Slot{StartMinute: s.StartMinute, Start: start, End: end})
	}

	return slots
}
