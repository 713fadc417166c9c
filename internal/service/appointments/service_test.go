package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fideslex/booking-service/internal/domain"
	appointmentRepo "github.com/fideslex/booking-service/internal/infra/storage/appointment"
	"github.com/fideslex/booking-service/pkg/logger"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

type repoMock struct {
	mock.Mock
}

func (m *repoMock) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*domain.Appointment)
	return a, args.Error(1)
}

func (m *repoMock) FindByProfessionalAndDay(ctx context.Context, professionalID string, from, to time.Time) ([]*domain.Appointment, error) {
	args := m.Called(ctx, professionalID, from, to)
	list, _ := args.Get(0).([]*domain.Appointment)
	return list, args.Error(1)
}

func (m *repoMock) ListByClient(ctx context.Context, clientID string) ([]*domain.Appointment, error) {
	args := m.Called(ctx, clientID)
	list, _ := args.Get(0).([]*domain.Appointment)
	return list, args.Error(1)
}

func (m *repoMock) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *repoMock) SweepExpired(ctx context.Context, clientID string, now time.Time) (int64, error) {
	args := m.Called(ctx, clientID, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *repoMock) SweepAllExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type expiryCounter struct{ total map[string]int64 }

func (e *expiryCounter) RecordExpired(trigger string, n int64) {
	if e.total == nil {
		e.total = map[string]int64{}
	}
	e.total[trigger] += n
}

func newService(repo *repoMock, now time.Time) (*Service, *expiryCounter) {
	expiry := &expiryCounter{}
	svc := NewService(repo, timegrid.New(time.UTC), expiry, logger.NewNop()).
		WithTimeProvider(fixedClock{now: now})
	return svc, expiry
}

func TestListForClient_SweepsBeforeReading(t *testing.T) {
	now := time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)
	repo := &repoMock{}
	sweep := repo.On("SweepExpired", mock.Anything, "c-1", now).Return(int64(2), nil)
	repo.On("ListByClient", mock.Anything, "c-1").
		Return([]*domain.Appointment{{ID: 1, Status: domain.AppointmentFinalized}}, nil).
		NotBefore(sweep)

	svc, expiry := newService(repo, now)
	list, err := svc.ListForClient(context.Background(), "c-1")

	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, int64(2), expiry.total[TriggerClientRead])
	repo.AssertExpectations(t)
}

func TestListForClient_SweepFailureDoesNotBlockRead(t *testing.T) {
	now := time.Now()
	repo := &repoMock{}
	repo.On("SweepExpired", mock.Anything, "c-1", now).Return(int64(0), errors.New("db down"))
	repo.On("ListByClient", mock.Anything, "c-1").Return([]*domain.Appointment{}, nil)

	svc, _ := newService(repo, now)
	_, err := svc.ListForClient(context.Background(), "c-1")

	assert.NoError(t, err)
}

func TestListForProfessionalDay_UsesDayRange(t *testing.T) {
	date := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	repo := &repoMock{}
	repo.On("FindByProfessionalAndDay", mock.Anything, "pro-1", date, date.Add(24*time.Hour)).
		Return([]*domain.Appointment{}, nil)

	svc, _ := newService(repo, date)
	_, err := svc.ListForProfessionalDay(context.Background(), "pro-1", date)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateStatus_OwnerMayFinalize(t *testing.T) {
	repo := &repoMock{}
	repo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Appointment{ID: 1, ProfessionalID: "pro-1", Status: domain.AppointmentPending}, nil)
	repo.On("UpdateStatus", mock.Anything, int64(1), domain.AppointmentFinalized).Return(nil)

	svc, _ := newService(repo, time.Now())
	a, err := svc.UpdateStatus(context.Background(),
		domain.Caller{UserID: "pro-1", Role: domain.RoleStaff}, 1, domain.AppointmentFinalized)

	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentFinalized, a.Status)
}

func TestUpdateStatus_OtherStaffForbidden(t *testing.T) {
	repo := &repoMock{}
	repo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Appointment{ID: 1, ProfessionalID: "pro-1", Status: domain.AppointmentPending}, nil)

	svc, _ := newService(repo, time.Now())
	_, err := svc.UpdateStatus(context.Background(),
		domain.Caller{UserID: "pro-2", Role: domain.RoleStaff}, 1, domain.AppointmentCancelled)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_AdminRestoreHitsTakenSlot(t *testing.T) {
	repo := &repoMock{}
	repo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Appointment{ID: 1, ProfessionalID: "pro-1", Status: domain.AppointmentCancelled}, nil)
	repo.On("UpdateStatus", mock.Anything, int64(1), domain.AppointmentPending).Return(appointmentRepo.ErrSlotTaken)

	svc, _ := newService(repo, time.Now())
	_, err := svc.UpdateStatus(context.Background(),
		domain.Caller{UserID: "admin-1", Role: domain.RoleAdmin}, 1, domain.AppointmentPending)

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc, _ := newService(&repoMock{}, time.Now())
	_, err := svc.UpdateStatus(context.Background(),
		domain.Caller{UserID: "admin-1", Role: domain.RoleAdmin}, 1, "done")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := &repoMock{}
	repo.On("GetByID", mock.Anything, int64(9)).Return(nil, appointmentRepo.ErrAppointmentNotFound)

	svc, _ := newService(repo, time.Now())
	_, err := svc.UpdateStatus(context.Background(),
		domain.Caller{UserID: "admin-1", Role: domain.RoleAdmin}, 9, domain.AppointmentCancelled)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
