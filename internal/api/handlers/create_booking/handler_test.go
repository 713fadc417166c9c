package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fideslex/booking-service/internal/api/handlers"
	"github.com/fideslex/booking-service/internal/api/middleware"
	"github.com/fideslex/booking-service/internal/domain"
	createBooking "github.com/fideslex/booking-service/internal/usecase/create_booking"
	"github.com/fideslex/booking-service/pkg/logger"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

type fakeUseCase struct {
	got *createBooking.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	start := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	return &createBooking.Response{Appointment: &domain.Appointment{
		ID:             5,
		ProfessionalID: req.ProfessionalID,
		StartAt:        start,
		EndAt:          start.Add(30 * time.Minute),
		Status:         domain.AppointmentPending,
		ServiceIDs:     req.ServiceIDs,
	}}, nil
}

func serve(t *testing.T, uc *fakeUseCase, body string, caller *domain.Caller) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, timegrid.New(time.UTC), logger.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	if caller != nil {
		req = req.WithContext(middleware.WithCaller(req.Context(), *caller))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

var staff = &domain.Caller{UserID: "pro-1", Role: domain.RoleStaff}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(t, uc, `{"professionalId":"pro-1","date":"2025-03-12","startMinute":600,"serviceIds":[3]}`, staff)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body handlers.AppointmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, int64(5), body.ID)
	assert.Equal(t, "2025-03-12T10:00:00Z", body.StartAt)
	assert.Equal(t, "pending", body.Status)

	assert.Equal(t, timegrid.Minute(600), uc.got.StartMinute)
	assert.Equal(t, createBooking.SourceDirect, uc.got.Source)
	assert.Equal(t, staff, uc.got.Caller)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{name: "out of grid", err: createBooking.ErrOutOfGrid, status: http.StatusBadRequest, kind: handlers.KindValidation},
		{name: "weekend", err: createBooking.ErrClosedOnWeekend, status: http.StatusBadRequest, kind: handlers.KindValidation},
		{name: "past", err: createBooking.ErrPastSlot, status: http.StatusBadRequest, kind: handlers.KindValidation},
		{name: "lunch", err: createBooking.ErrLunchBreak, status: http.StatusConflict, kind: handlers.KindConflict},
		{name: "booked", err: createBooking.ErrSlotBooked, status: http.StatusConflict, kind: handlers.KindConflict},
		{name: "service", err: createBooking.ErrServiceNotFound, status: http.StatusNotFound, kind: handlers.KindNotFound},
		{name: "internal", err: createBooking.ErrInternal, status: http.StatusInternalServerError, kind: handlers.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeUseCase{err: tt.err}, `{"professionalId":"pro-1","date":"2025-03-12","startMinute":960}`, staff)

			assert.Equal(t, tt.status, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.kind, body.Kind)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestHandle_BadInput(t *testing.T) {
	uc := &fakeUseCase{}

	assert.Equal(t, http.StatusBadRequest, serve(t, uc, `{"professionalId":"pro-1","date":"12/03/2025","startMinute":600}`, staff).Code)
	assert.Equal(t, http.StatusBadRequest, serve(t, uc, `{"professionalId":"pro-1","date":"2025-03-12"}`, staff).Code)
	assert.Equal(t, http.StatusBadRequest, serve(t, uc, `not json`, staff).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(t, uc, `{}`, nil).Code)
	assert.Nil(t, uc.got)
}
