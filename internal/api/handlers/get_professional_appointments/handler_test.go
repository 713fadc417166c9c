package get_professional_appointments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fideslex/booking-service/internal/api/handlers"
	"github.com/fideslex/booking-service/internal/api/middleware"
	"github.com/fideslex/booking-service/internal/domain"
	"github.com/fideslex/booking-service/internal/service/appointments"
	"github.com/fideslex/booking-service/pkg/logger"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

type fakeService struct {
	gotProfessional string
	gotDate         time.Time
	list            []*domain.Appointment
	err             error
}

func (f *fakeService) ListForProfessionalDay(_ context.Context, professionalID string, date time.Time) ([]*domain.Appointment, error) {
	f.gotProfessional = professionalID
	f.gotDate = date
	return f.list, f.err
}

var (
	grid  = timegrid.New(time.UTC)
	staff = domain.Caller{UserID: "staff-1", Role: domain.RoleStaff}
)

func get(svc *fakeService, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = req.WithContext(middleware.WithCaller(req.Context(), staff))
	rec := httptest.NewRecorder()
	NewHandler(svc, grid, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_DefaultsToCaller(t *testing.T) {
	start := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	svc := &fakeService{list: []*domain.Appointment{{
		ID:             1,
		ProfessionalID: "staff-1",
		StartAt:        start,
		EndAt:          start.Add(30 * time.Minute),
		Status:         domain.AppointmentPending,
	}}}

	rec := get(svc, "/appointments?date=2025-03-12")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "staff-1", svc.gotProfessional)
	assert.Equal(t, "2025-03-12", grid.FormatDate(svc.gotDate))

	var out []handlers.AppointmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, "2025-03-12T10:00:00Z", out[0].StartAt)
	assert.Equal(t, "pending", out[0].Status)
}

func TestHandle_ExplicitProfessional(t *testing.T) {
	svc := &fakeService{}

	rec := get(svc, "/appointments?professionalId=staff-2&date=2025-03-12")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "staff-2", svc.gotProfessional)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandle_BadInput(t *testing.T) {
	for _, target := range []string{"/appointments", "/appointments?date=12-03-2025"} {
		rec := get(&fakeService{}, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestHandle_ServiceErrors(t *testing.T) {
	rec := get(&fakeService{err: fmt.Errorf("%w: empty professional", appointments.ErrInvalidInput)}, "/appointments?date=2025-03-12")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(&fakeService{err: appointments.ErrInternal}, "/appointments?date=2025-03-12")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
