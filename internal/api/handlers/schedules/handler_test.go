package schedules

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fideslex/booking-service/internal/api/handlers"
	"github.com/fideslex/booking-service/internal/domain"
	"github.com/fideslex/booking-service/internal/service/schedules"
	"github.com/fideslex/booking-service/pkg/logger"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context) ([]*domain.ScheduleSlot, error) {
	args := m.Called(ctx)
	slots, _ := args.Get(0).([]*domain.ScheduleSlot)
	return slots, args.Error(1)
}

func (m *mockService) Create(ctx context.Context, start, end timegrid.Minute) (*domain.ScheduleSlot, error) {
	args := m.Called(ctx, start, end)
	slot, _ := args.Get(0).(*domain.ScheduleSlot)
	return slot, args.Error(1)
}

func (m *mockService) Update(ctx context.Context, id int64, start, end timegrid.Minute) (*domain.ScheduleSlot, error) {
	args := m.Called(ctx, id, start, end)
	slot, _ := args.Get(0).(*domain.ScheduleSlot)
	return slot, args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func router(svc ScheduleService) *mux.Router {
	h := NewHandler(svc, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/schedules", h.List).Methods(http.MethodGet)
	r.HandleFunc("/schedules", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/schedules/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/schedules/{id}", h.Delete).Methods(http.MethodDelete)
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func errorKind(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Kind
}

func TestList(t *testing.T) {
	svc := new(mockService)
	svc.On("List", mock.Anything).Return([]*domain.ScheduleSlot{
		{ID: 1, StartMinute: 540, EndMinute: 570},
		{ID: 2, StartMinute: 570, EndMinute: 600},
	}, nil)

	rec := serve(router(svc), http.MethodGet, "/schedules", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var out []SlotResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	require.Len(t, out, 2)
	assert.Equal(t, "09:00", out[0].Start)
	assert.Equal(t, "10:00", out[1].End)
}

func TestCreate(t *testing.T) {
	svc := new(mockService)
	svc.On("Create", mock.Anything, timegrid.Minute(600), timegrid.Minute(630)).
		Return(&domain.ScheduleSlot{ID: 7, StartMinute: 600, EndMinute: 630}, nil)

	rec := serve(router(svc), http.MethodPost, "/schedules", `{"startMinute":600,"endMinute":630}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var out SlotResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, int64(7), out.ID)
	svc.AssertExpectations(t)
}

func TestCreate_MissingBounds(t *testing.T) {
	svc := new(mockService)

	rec := serve(router(svc), http.MethodPost, "/schedules", `{"startMinute":600}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{"invalid slot", schedules.ErrInvalidSlot, http.StatusBadRequest, handlers.KindValidation},
		{"duplicate", schedules.ErrDuplicateSlot, http.StatusConflict, handlers.KindConflict},
		{"internal", schedules.ErrInternal, http.StatusInternalServerError, handlers.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(router(svc), http.MethodPost, "/schedules", `{"startMinute":600,"endMinute":630}`)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.kind, errorKind(t, rec))
		})
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := new(mockService)
	svc.On("Update", mock.Anything, int64(9), timegrid.Minute(600), timegrid.Minute(630)).
		Return(nil, schedules.ErrSlotNotFound)

	rec := serve(router(svc), http.MethodPut, "/schedules/9", `{"startMinute":600,"endMinute":630}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDelete(t *testing.T) {
	svc := new(mockService)
	svc.On("Delete", mock.Anything, int64(3)).Return(nil)

	rec := serve(router(svc), http.MethodDelete, "/schedules/3", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	svc.AssertExpectations(t)
}

func TestDelete_InvalidID(t *testing.T) {
	rec := serve(router(new(mockService)), http.MethodDelete, "/schedules/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
