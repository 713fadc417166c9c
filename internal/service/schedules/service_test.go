package schedules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fideslex/booking-service/internal/domain"
	scheduleRepo "github.com/fideslex/booking-service/internal/infra/storage/schedule"
	"github.com/fideslex/booking-service/pkg/logger"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

type repoMock struct {
	mock.Mock
}

func (m *repoMock) List(ctx context.Context) ([]*domain.ScheduleSlot, error) {
	args := m.Called(ctx)
	slots, _ := args.Get(0).([]*domain.ScheduleSlot)
	return slots, args.Error(1)
}

func (m *repoMock) Create(ctx context.Context, start, end timegrid.Minute) (*domain.ScheduleSlot, error) {
	args := m.Called(ctx, start, end)
	slot, _ := args.Get(0).(*domain.ScheduleSlot)
	return slot, args.Error(1)
}

func (m *repoMock) Update(ctx context.Context, id int64, start, end timegrid.Minute) (*domain.ScheduleSlot, error) {
	args := m.Called(ctx, id, start, end)
	slot, _ := args.Get(0).(*domain.ScheduleSlot)
	return slot, args.Error(1)
}

func (m *repoMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestValidateSlot(t *testing.T) {
	cases := []struct {
		name       string
		start, end timegrid.Minute
		ok         bool
	}{
		{"first slot", 540, 570, true},
		{"last slot", 930, 960, true},
		{"hour slot", 600, 660, true},
		{"before open", 510, 540, false},
		{"after close", 960, 990, false},
		{"unaligned start", 545, 570, false},
		{"unaligned end", 540, 575, false},
		{"reversed", 600, 570, false},
		{"empty", 600, 600, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSlot(tc.start, tc.end)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidSlot)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCreate_DuplicateIsConflict(t *testing.T) {
	repo := &repoMock{}
	repo.On("Create", mock.Anything, timegrid.Minute(540), timegrid.Minute(570)).
		Return(nil, scheduleRepo.ErrDuplicateSlot)

	svc := NewService(repo, logger.NewNop())
	_, err := svc.Create(context.Background(), 540, 570)

	assert.ErrorIs(t, err, domain.ErrConflict)
	repo.AssertExpectations(t)
}

func TestCreate_InvalidNeverReachesRepository(t *testing.T) {
	repo := &repoMock{}
	svc := NewService(repo, logger.NewNop())

	_, err := svc.Create(context.Background(), 930, 990)

	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &repoMock{}
	repo.On("Update", mock.Anything, int64(3), timegrid.Minute(600), timegrid.Minute(630)).
		Return(nil, scheduleRepo.ErrSlotNotFound)

	svc := NewService(repo, logger.NewNop())
	_, err := svc.Update(context.Background(), 3, 600, 630)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &repoMock{}
	repo.On("Delete", mock.Anything, int64(3)).Return(scheduleRepo.ErrSlotNotFound)

	svc := NewService(repo, logger.NewNop())
	assert.ErrorIs(t, svc.Delete(context.Background(), 3), ErrSlotNotFound)
}

func TestDefaultSlots(t *testing.T) {
	slots := DefaultSlots()

	require.Len(t, slots, 14)
	assert.Equal(t, timegrid.Minute(540), slots[0].StartMinute)
	assert.Equal(t, timegrid.Minute(960), slots[13].EndMinute)
	for _, s := range slots {
		assert.True(t, s.OnGrid())
	}
}
