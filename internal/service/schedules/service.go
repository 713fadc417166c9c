package schedules

import (
	"context"
	"errors"
	"fmt"

	"github.com/fideslex/booking-service/internal/domain"
	scheduleRepo "github.com/fideslex/booking-service/internal/infra/storage/schedule"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

// Service сервис каталога слотов расписания
type Service struct {
	repo   ScheduleRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo ScheduleRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List возвращает все слоты по возрастанию начала
func (s *Service) List(ctx context.Context) ([]*domain.ScheduleSlot, error) {
	slots, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ListSchedules: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return slots, nil
}

// Create добавляет слот в каталог
func (s *Service) Create(ctx context.Context, start, end timegrid.Minute) (*domain.ScheduleSlot, error) {
	s.logger.Info("CreateSchedule: start=%s, end=%s", start, end)

	if err := ValidateSlot(start, end); err != nil {
		s.logger.Warn("CreateSchedule: validation failed: %v", err)
		return nil, err
	}

	slot, err := s.repo.Create(ctx, start, end)
	if err != nil {
		return nil, s.mapRepoError("CreateSchedule", err)
	}

	s.logger.Info("CreateSchedule: created slot id=%d", slot.ID)
	return slot, nil
}

// Update меняет интервал слота
func (s *Service) Update(ctx context.Context, id int64, start, end timegrid.Minute) (*domain.ScheduleSlot, error) {
	s.logger.Info("UpdateSchedule: id=%d, start=%s, end=%s", id, start, end)

	if err := ValidateSlot(start, end); err != nil {
		s.logger.Warn("UpdateSchedule: validation failed: %v", err)
		return nil, err
	}

	slot, err := s.repo.Update(ctx, id, start, end)
	if err != nil {
		return nil, s.mapRepoError("UpdateSchedule", err)
	}

	return slot, nil
}

// Delete удаляет слот
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("DeleteSchedule: id=%d", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepoError("DeleteSchedule", err)
	}
	return nil
}

// ValidateSlot проверяет границы слота: кратность 30 минутам, 09:00 <= start < end <= 16:00
func ValidateSlot(start, end timegrid.Minute) error {
	if !start.Aligned(domain.SlotMinutes) || !end.Aligned(domain.SlotMinutes) {
		return fmt.Errorf("%w: start and end must be multiples of %d minutes", ErrInvalidSlot, domain.SlotMinutes)
	}
	if start < domain.DayOpen || end > domain.DayClose {
		return fmt.Errorf("%w: slot must lie within %s-%s", ErrInvalidSlot, domain.DayOpen, domain.DayClose)
	}
	if end <= start {
		return fmt.Errorf("%w: end must be after start", ErrInvalidSlot)
	}
	return nil
}

// DefaultSlots стандартный каталог: получасовые слоты с 09:00 до 16:00
func DefaultSlots() []domain.ScheduleSlot {
	slots := make([]domain.ScheduleSlot, 0)
	for m := domain.DayOpen; m+domain.SlotMinutes <= domain.DayClose; m += domain.SlotMinutes {
		slots = append(slots, domain.ScheduleSlot{StartMinute: m, EndMinute: m + domain.SlotMinutes})
	}
	return slots
}

func (s *Service) mapRepoError(op string, err error) error {
	switch {
	case errors.Is(err, scheduleRepo.ErrDuplicateSlot):
		s.logger.Warn("%s: duplicate slot", op)
		return ErrDuplicateSlot
	case errors.Is(err, scheduleRepo.ErrSlotNotFound):
		s.logger.Warn("%s: slot not found", op)
		return ErrSlotNotFound
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
