package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fideslex/booking-service/internal/domain"
	appointmentRepo "github.com/fideslex/booking-service/internal/infra/storage/appointment"
)

// Триггеры автоматического завершения записей
const (
	TriggerClientRead = "client_read"
	TriggerScheduled  = "scheduled"
)

// Service сервис чтения и смены статусов записей
type Service struct {
	repo         AppointmentRepository
	grid         Grid
	expiry       ExpiryRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(repo AppointmentRepository, grid Grid, expiry ExpiryRecorder, logger Logger) *Service {
	return &Service{
		repo:         repo,
		grid:         grid,
		expiry:       expiry,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetAppointment: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return a, nil
}

// ListForProfessionalDay возвращает все записи специалиста за день, включая отмененные
func (s *Service) ListForProfessionalDay(ctx context.Context, professionalID string, date time.Time) ([]*domain.Appointment, error) {
	if professionalID == "" {
		return nil, fmt.Errorf("%w: professionalId is required", ErrInvalidInput)
	}

	from, to := s.grid.DayRange(date)
	list, err := s.repo.FindByProfessionalAndDay(ctx, professionalID, from, to)
	if err != nil {
		s.logger.Error("ListForProfessionalDay: repository error for professional=%s: %v", professionalID, err)
		return nil, fmt.Errorf("%w: ListForProfessionalDay - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// ListForClient возвращает записи клиента.
// Перед чтением просроченные pending-записи клиента переводятся в finalized.
func (s *Service) ListForClient(ctx context.Context, clientID string) ([]*domain.Appointment, error) {
	if clientID == "" {
		return nil, fmt.Errorf("%w: clientId is required", ErrInvalidInput)
	}

	// 1. Ленивое завершение просроченных записей; ошибка не мешает чтению
	n, err := s.repo.SweepExpired(ctx, clientID, s.timeProvider.Now())
	if err != nil {
		s.logger.Warn("ListForClient: sweep failed for client=%s: %v", clientID, err)
	} else if n > 0 {
		s.logger.Info("ListForClient: finalized %d expired appointments for client=%s", n, clientID)
		s.expiry.RecordExpired(TriggerClientRead, n)
	}

	// 2. Читаем записи
	list, err := s.repo.ListByClient(ctx, clientID)
	if err != nil {
		s.logger.Error("ListForClient: repository error for client=%s: %v", clientID, err)
		return nil, fmt.Errorf("%w: ListForClient - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// UpdateStatus меняет статус записи.
// Разрешено специалисту, которому принадлежит запись, и администратору.
func (s *Service) UpdateStatus(ctx context.Context, caller domain.Caller, id int64, status domain.AppointmentStatus) (*domain.Appointment, error) {
	s.logger.Info("UpdateAppointmentStatus: id=%d, status=%s, caller=%s", id, status, caller.UserID)

	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	a, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !caller.IsAdmin() && !(caller.IsStaff() && a.ProfessionalID == caller.UserID) {
		s.logger.Warn("UpdateAppointmentStatus: access denied for user=%s to appointment id=%d", caller.UserID, id)
		return nil, ErrAccessDenied
	}

	if a.Status == status {
		return a, nil
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			return nil, ErrAppointmentNotFound
		case errors.Is(err, appointmentRepo.ErrSlotTaken):
			s.logger.Warn("UpdateAppointmentStatus: slot of appointment id=%d is taken again", id)
			return nil, ErrSlotTaken
		default:
			s.logger.Error("UpdateAppointmentStatus: repository error for id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateAppointmentStatus: appointment id=%d %s -> %s", id, a.Status, status)
	a.Status = status
	return a, nil
}

// SweepAllExpired завершает просроченные pending-записи всех клиентов
func (s *Service) SweepAllExpired(ctx context.Context) (int64, error) {
	n, err := s.repo.SweepAllExpired(ctx, s.timeProvider.Now())
	if err != nil {
		return 0, fmt.Errorf("%w: SweepAllExpired - repository error: %v", ErrInternal, err)
	}
	s.expiry.RecordExpired(TriggerScheduled, n)
	return n, nil
}
