package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fideslex/booking-service/internal/domain"
	"github.com/fideslex/booking-service/pkg/logger"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

type fakeSchedules struct {
	slots []*domain.ScheduleSlot
	err   error
}

func (f *fakeSchedules) List(context.Context) ([]*domain.ScheduleSlot, error) {
	return f.slots, f.err
}

type fakeLedger struct {
	appointments []*domain.Appointment
	calls        int
}

func (f *fakeLedger) FindByProfessionalAndDay(_ context.Context, _ string, from, to time.Time) ([]*domain.Appointment, error) {
	f.calls++
	out := make([]*domain.Appointment, 0)
	for _, a := range f.appointments {
		if !a.StartAt.Before(from) && a.StartAt.Before(to) {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeLunch struct {
	window *domain.ExclusionWindow
}

func (f *fakeLunch) ExclusionWindow(context.Context, string) (*domain.ExclusionWindow, error) {
	return f.window, nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func defaultCatalog() []*domain.ScheduleSlot {
	slots := make([]*domain.ScheduleSlot, 0, 14)
	for m := timegrid.Minute(540); m+30 <= 960; m += 30 {
		slots = append(slots, &domain.ScheduleSlot{StartMinute: m, EndMinute: m + 30})
	}
	return slots
}

var grid = timegrid.New(time.UTC)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := grid.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newUseCase(catalog []*domain.ScheduleSlot, ledger *fakeLedger, lunch *domain.ExclusionWindow, now time.Time) *UseCase {
	return NewUseCase(&fakeSchedules{slots: catalog}, ledger, &fakeLunch{window: lunch}, grid, logger.NewNop()).
		WithTimeProvider(fixedClock{now: now})
}

func startMinutes(slots []Slot) []timegrid.Minute {
	out := make([]timegrid.Minute, len(slots))
	for i, s := range slots {
		out[i] = s.StartMinute
	}
	return out
}

func TestExecute_WednesdayWithLunchAndBooking(t *testing.T) {
	date := mustDate(t, "2025-03-12") // среда
	ledger := &fakeLedger{appointments: []*domain.Appointment{{
		ProfessionalID: "pro-1",
		StartAt:        grid.ToAbsolute(date, 600),
		EndAt:          grid.ToAbsolute(date, 630),
		Status:         domain.AppointmentPending,
	}}}
	lunch := &domain.ExclusionWindow{Start: 780, End: 840}

	uc := newUseCase(defaultCatalog(), ledger, lunch, mustDate(t, "2025-03-10"))
	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: "pro-1", Date: date})

	require.NoError(t, err)
	assert.Equal(t, []timegrid.Minute{540, 570, 630, 660, 690, 720, 750, 840, 870, 900, 930}, startMinutes(resp.Slots))
	for _, s := range resp.Slots {
		assert.Equal(t, 30*time.Minute, s.End.Sub(s.Start))
	}
}

func TestExecute_WeekendIsEmpty(t *testing.T) {
	ledger := &fakeLedger{}
	uc := newUseCase(defaultCatalog(), ledger, nil, mustDate(t, "2025-03-10"))

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: "pro-1", Date: mustDate(t, "2025-03-15")})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Zero(t, ledger.calls)
}

func TestExecute_CancelledDoesNotOccupy(t *testing.T) {
	date := mustDate(t, "2025-03-12")
	ledger := &fakeLedger{appointments: []*domain.Appointment{{
		StartAt: grid.ToAbsolute(date, 540),
		EndAt:   grid.ToAbsolute(date, 570),
		Status:  domain.AppointmentCancelled,
	}}}

	uc := newUseCase(defaultCatalog(), ledger, nil, mustDate(t, "2025-03-10"))
	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: "pro-1", Date: date})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 14)
	assert.Equal(t, timegrid.Minute(540), resp.Slots[0].StartMinute)
}

func TestExecute_FiltersOffGridCatalogRows(t *testing.T) {
	catalog := []*domain.ScheduleSlot{
		{StartMinute: 930, EndMinute: 960},
		{StartMinute: 600, EndMinute: 660}, // час
		{StartMinute: 510, EndMinute: 540}, // до открытия
		{StartMinute: 960, EndMinute: 990}, // после закрытия
		{StartMinute: 540, EndMinute: 570},
	}

	uc := newUseCase(catalog, &fakeLedger{}, nil, mustDate(t, "2025-03-10"))
	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: "pro-1", Date: mustDate(t, "2025-03-12")})

	require.NoError(t, err)
	assert.Equal(t, []timegrid.Minute{540, 930}, startMinutes(resp.Slots))
}

func TestExecute_SkipsPastSlotsToday(t *testing.T) {
	date := mustDate(t, "2025-03-12")
	now := grid.ToAbsolute(date, 615) // 10:15

	uc := newUseCase(defaultCatalog(), &fakeLedger{}, nil, now)
	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: "pro-1", Date: date})

	require.NoError(t, err)
	// 10:00-10:30 еще идет и предлагается; 09:30-10:00 уже закончился
	assert.Equal(t, timegrid.Minute(600), resp.Slots[0].StartMinute)
	assert.Len(t, resp.Slots, 12)
}

func TestExecute_AllSlotsWithinBusinessHours(t *testing.T) {
	date := mustDate(t, "2025-03-13")
	uc := newUseCase(defaultCatalog(), &fakeLedger{}, nil, mustDate(t, "2025-03-10"))

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: "pro-1", Date: date})
	require.NoError(t, err)

	for _, s := range resp.Slots {
		assert.True(t, s.StartMinute >= 540 && s.StartMinute+30 <= 960)
		assert.True(t, s.StartMinute.Aligned(30))
	}
}

func TestExecute_Validation(t *testing.T) {
	uc := newUseCase(defaultCatalog(), &fakeLedger{}, nil, time.Now())

	_, err := uc.Execute(context.Background(), &Request{Date: mustDate(t, "2025-03-12")})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExecute_CatalogError(t *testing.T) {
	uc := NewUseCase(&fakeSchedules{err: errors.New("boom")}, &fakeLedger{}, &fakeLunch{}, grid, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: "pro-1", Date: mustDate(t, "2025-03-12")})
	assert.ErrorIs(t, err, ErrInternal)
}
