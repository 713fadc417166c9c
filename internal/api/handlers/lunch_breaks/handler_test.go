package lunch_breaks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fideslex/booking-service/internal/domain"
	"github.com/fideslex/booking-service/internal/service/lunchbreaks"
	"github.com/fideslex/booking-service/pkg/logger"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

type fakeService struct {
	current *domain.LunchBreak
	setErr  error
	cleared bool
}

func (f *fakeService) Get(context.Context, string) (*domain.LunchBreak, error) {
	return f.current, nil
}

func (f *fakeService) Set(_ context.Context, professionalID string, start timegrid.Minute) (*domain.LunchBreak, error) {
	if f.setErr != nil {
		return nil, f.setErr
	}
	f.current = &domain.LunchBreak{ProfessionalID: professionalID, StartMinute: start, UpdatedAt: time.Now()}
	return f.current, nil
}

func (f *fakeService) Clear(context.Context, string) error {
	f.cleared = true
	f.current = nil
	return nil
}

func router(svc *fakeService) *mux.Router {
	h := NewHandler(svc, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/professionals/{professionalId}/lunch-break", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/professionals/{professionalId}/lunch-break", h.Set).Methods(http.MethodPut)
	r.HandleFunc("/professionals/{professionalId}/lunch-break", h.Clear).Methods(http.MethodDelete)
	return r
}

func do(r http.Handler, method, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, "/professionals/pro-1/lunch-break", strings.NewReader(body)))
	return rec
}

func TestLunchBreak_Lifecycle(t *testing.T) {
	svc := &fakeService{}
	r := router(svc)

	rec := do(r, http.MethodGet, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var empty LunchBreakResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&empty))
	assert.Nil(t, empty.StartMinute)

	rec = do(r, http.MethodPut, `{"startMinute":780}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var set LunchBreakResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&set))
	assert.Equal(t, "13:00", *set.Start)
	assert.Equal(t, "14:00", *set.End)

	rec = do(r, http.MethodDelete, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, svc.cleared)
}

func TestLunchBreak_SetErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{lunchbreaks.ErrInvalidStart, http.StatusBadRequest},
		{lunchbreaks.ErrNotProfessional, http.StatusBadRequest},
		{lunchbreaks.ErrProfessionalNotFound, http.StatusNotFound},
		{lunchbreaks.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		rec := do(router(&fakeService{setErr: tt.err}), http.MethodPut, `{"startMinute":780}`)
		assert.Equal(t, tt.status, rec.Code)
	}

	rec := do(router(&fakeService{}), http.MethodPut, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
