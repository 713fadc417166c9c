package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/fideslex/booking-service/internal/usecase/get_available_slots"
	"github.com/fideslex/booking-service/pkg/logger"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

type fakeUseCase struct {
	got *getAvailableSlots.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	start := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	return &getAvailableSlots.Response{
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Slots:          []getAvailableSlots.Slot{{StartMinute: 540, Start: start, End: start.Add(30 * time.Minute)}},
	}, nil
}

func get(t *testing.T, uc *fakeUseCase, query string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, timegrid.New(time.UTC), logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability?"+query, nil))
	return rec
}

func TestHandle_ReturnsSlots(t *testing.T) {
	uc := &fakeUseCase{}

	rec := get(t, uc, "professionalId=pro-1&date=2025-03-12")

	require.Equal(t, http.StatusOK, rec.Code)
	var body AvailableSlotsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Slots, 1)
	assert.Equal(t, "2025-03-12T09:00:00Z", body.Slots[0].Start)
	assert.Equal(t, "2025-03-12T09:30:00Z", body.Slots[0].End)
	assert.Equal(t, "2025-03-12", body.Date)
}

func TestHandle_Validation(t *testing.T) {
	uc := &fakeUseCase{}

	assert.Equal(t, http.StatusBadRequest, get(t, uc, "date=2025-03-12").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, uc, "professionalId=pro-1").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, uc, "professionalId=pro-1&date=2025-13-40").Code)
	assert.Nil(t, uc.got)
}

func TestHandle_InternalError(t *testing.T) {
	rec := get(t, &fakeUseCase{err: getAvailableSlots.ErrInternal}, "professionalId=pro-1&date=2025-03-12")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
