package get_available_slots

import (
	"context"
	"fmt"

	"github.com/fideslex/booking-service/internal/domain"
)

// UseCase вычисление свободных слотов специалиста на день
type UseCase struct {
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	lunchResolver   LunchResolver
	grid            Grid
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	lunchResolver LunchResolver,
	grid Grid,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		lunchResolver:   lunchResolver,
		grid:            grid,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения доступных слотов.
// Отсутствие слотов не ошибка: возвращается пустой список.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: professional=%s, date=%s",
		req.ProfessionalID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Slots:          []Slot{},
	}

	// 2. В выходные фирма закрыта
	if uc.grid.IsWeekend(req.Date) {
		uc.logger.Info("GetAvailableSlots: %s is a weekend", req.Date.Format(domain.DateFormat))
		return resp, nil
	}

	// 3. Обеденное исключение специалиста (может отсутствовать)
	lunch, err := uc.lunchResolver.ExclusionWindow(ctx, req.ProfessionalID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get lunch break: %v", err)
		return nil, fmt.Errorf("%w: failed to get lunch break: %v", ErrInternal, err)
	}

	// 4. Каталог слотов
	catalog, err := uc.scheduleRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list schedules: %v", err)
		return nil, fmt.Errorf("%w: failed to list schedules: %v", ErrInternal, err)
	}

	// 5. Записи специалиста за день
	from, to := uc.grid.DayRange(req.Date)
	appointments, err := uc.appointmentRepo.FindByProfessionalAndDay(ctx, req.ProfessionalID, from, to)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Вычисляем свободные слоты
	resp.Slots = calculateAvailableSlots(uc.grid, req.Date, catalog, lunch, appointments, uc.timeProvider.Now())

	uc.logger.Info("GetAvailableSlots: %d slots for professional=%s, date=%s",
		len(resp.Slots), req.ProfessionalID, req.Date.Format(domain.DateFormat))

	return resp, nil
}
