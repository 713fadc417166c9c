package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/fideslex/booking-service/internal/domain"
	appointmentRepo "github.com/fideslex/booking-service/internal/infra/storage/appointment"
	profileRepo "github.com/fideslex/booking-service/internal/infra/storage/profile"
	"github.com/fideslex/booking-service/pkg/ptr"
)

// Исходы бронирования (метка метрик)
const (
	outcomeCreated  = "created"
	outcomeRejected = "rejected"
	outcomeConflict = "conflict"
	outcomeError    = "error"
)

// UseCase фиксация записи на слот специалиста
type UseCase struct {
	appointmentRepo AppointmentRepository
	lunchResolver   LunchResolver
	profileRepo     ProfileRepository
	grid            Grid
	txManager       TransactionManager
	recorder        BookingRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	lunchResolver LunchResolver,
	profileRepo ProfileRepository,
	grid Grid,
	txManager TransactionManager,
	recorder BookingRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		lunchResolver:   lunchResolver,
		profileRepo:     profileRepo,
		grid:            grid,
		txManager:       txManager,
		recorder:        recorder,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания записи.
// Проверки идут строго по порядку, срабатывает первая: сетка, выходной, обед, прошлое, занятость.
// Гонку двух одновременных записей разрешает уникальный индекс хранилища.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	source := req.Source
	if source == "" {
		source = SourceDirect
	}

	uc.logger.Info("CreateBooking: professional=%s, date=%s, start=%s, source=%s",
		req.ProfessionalID, req.Date.Format(domain.DateFormat), req.StartMinute, source)

	resp, err := uc.execute(ctx, req)
	uc.recorder.RecordBooking(source, outcomeOf(err))
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Слот должен лежать на сетке
	if err := validateGrid(req.StartMinute); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}
	if uc.grid.IsWeekend(req.Date) {
		uc.logger.Warn("CreateBooking: %s is a weekend", req.Date.Format(domain.DateFormat))
		return nil, ErrClosedOnWeekend
	}

	// 3. Обед специалиста
	lunch, err := uc.lunchResolver.ExclusionWindow(ctx, req.ProfessionalID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get lunch break: %v", err)
		return nil, fmt.Errorf("%w: failed to get lunch break: %v", ErrInternal, err)
	}
	if lunch != nil && lunch.Contains(req.StartMinute) {
		uc.logger.Warn("CreateBooking: start %s falls into lunch %s-%s", req.StartMinute, lunch.Start, lunch.End)
		return nil, ErrLunchBreak
	}

	// 4. Нельзя записаться на прошедший слот
	startAt := uc.grid.ToAbsolute(req.Date, req.StartMinute)
	endAt := uc.grid.ToAbsolute(req.Date, req.StartMinute+domain.SlotMinutes)
	if !endAt.After(uc.timeProvider.Now()) {
		uc.logger.Warn("CreateBooking: slot ending at %s is in the past", endAt)
		return nil, ErrPastSlot
	}

	// 5. Данные клиента
	client, err := uc.resolveClient(ctx, req)
	if err != nil {
		return nil, err
	}

	appointment := &domain.Appointment{
		ProfessionalID: req.ProfessionalID,
		ClientID:       client.ID,
		ClientName:     client.Name,
		ClientEmail:    client.Email,
		StartAt:        startAt,
		EndAt:          endAt,
		Status:         domain.AppointmentPending,
		ServiceIDs:     req.ServiceIDs,
	}

	// 6. Проверка занятости и вставка в одной транзакции.
	// ExistsAt дает понятную ошибку в обычном случае, гонку ловит уникальный индекс.
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		exists, err := uc.appointmentRepo.ExistsAt(txCtx, req.ProfessionalID, startAt)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if exists {
			uc.logger.Warn("CreateBooking: slot %s of professional=%s already booked", startAt, req.ProfessionalID)
			return ErrSlotBooked
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			switch {
			case errors.Is(err, appointmentRepo.ErrSlotTaken):
				uc.logger.Warn("CreateBooking: lost race for slot %s of professional=%s", startAt, req.ProfessionalID)
				return ErrSlotBooked
			case errors.Is(err, appointmentRepo.ErrUnknownService):
				return ErrServiceNotFound
			default:
				uc.logger.Error("CreateBooking: failed to insert appointment: %v", err)
				return fmt.Errorf("%w: failed to insert appointment: %v", ErrInternal, err)
			}
		}

		appointment = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: appointment id=%d created for professional=%s at %s",
		appointment.ID, appointment.ProfessionalID, appointment.StartAt)

	return &Response{Appointment: appointment}, nil
}

// resolveClient подставляет данные клиента из профиля, если записывается сам клиент
func (uc *UseCase) resolveClient(ctx context.Context, req *Request) (Client, error) {
	client := req.Client
	if req.Caller == nil || req.Caller.Role != domain.RoleClient {
		return client, nil
	}

	client.ID = ptr.Ptr(req.Caller.UserID)

	profile, err := uc.profileRepo.GetByUserID(ctx, req.Caller.UserID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return client, nil
		}
		uc.logger.Error("CreateBooking: failed to get profile=%s: %v", req.Caller.UserID, err)
		return Client{}, fmt.Errorf("%w: failed to get profile: %v", ErrInternal, err)
	}

	if name := profile.FullName(); name != "" {
		client.Name = ptr.Ptr(name)
	}
	if profile.Email != "" {
		client.Email = ptr.Ptr(profile.Email)
	}
	return client, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeCreated
	case errors.Is(err, domain.ErrConflict):
		return outcomeConflict
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrNotFound):
		return outcomeRejected
	default:
		return outcomeError
	}
}
