package lunchbreaks

import (
	"context"
	"errors"
	"fmt"

	"github.com/fideslex/booking-service/internal/domain"
	lunchRepo "github.com/fideslex/booking-service/internal/infra/storage/lunchbreak"
	profileRepo "github.com/fideslex/booking-service/internal/infra/storage/profile"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

// Service разрешает обеденные исключения специалистов
type Service struct {
	lunchRepo   LunchBreakRepository
	profileRepo ProfileRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса
func NewService(lunchRepo LunchBreakRepository, profileRepo ProfileRepository, logger Logger) *Service {
	return &Service{
		lunchRepo:   lunchRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Get возвращает обед специалиста или nil, если он не задан
func (s *Service) Get(ctx context.Context, professionalID string) (*domain.LunchBreak, error) {
	lb, err := s.lunchRepo.Get(ctx, professionalID)
	if err != nil {
		if errors.Is(err, lunchRepo.ErrLunchBreakNotFound) {
			return nil, nil
		}
		s.logger.Error("GetLunchBreak: repository error for professional=%s: %v", professionalID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return lb, nil
}

// Set задает или заменяет обед специалиста
func (s *Service) Set(ctx context.Context, professionalID string, start timegrid.Minute) (*domain.LunchBreak, error) {
	s.logger.Info("SetLunchBreak: professional=%s, start=%s", professionalID, start)

	// 1. Валидация времени начала
	if err := ValidateStart(start); err != nil {
		s.logger.Warn("SetLunchBreak: validation failed: %v", err)
		return nil, err
	}

	// 2. Обед бывает только у сотрудников
	profile, err := s.profileRepo.GetByUserID(ctx, professionalID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("SetLunchBreak: professional=%s not found", professionalID)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("SetLunchBreak: failed to get profile=%s: %v", professionalID, err)
		return nil, fmt.Errorf("%w: Set - get profile: %v", ErrInternal, err)
	}
	if !profile.Role.CanHoldAppointments() {
		s.logger.Warn("SetLunchBreak: user=%s has role %s", professionalID, profile.Role)
		return nil, ErrNotProfessional
	}

	// 3. Сохраняем
	lb, err := s.lunchRepo.Upsert(ctx, professionalID, start)
	if err != nil {
		s.logger.Error("SetLunchBreak: repository error for professional=%s: %v", professionalID, err)
		return nil, fmt.Errorf("%w: Set - repository error: %v", ErrInternal, err)
	}

	return lb, nil
}

// Clear удаляет обед специалиста, повторный вызов безопасен
func (s *Service) Clear(ctx context.Context, professionalID string) error {
	s.logger.Info("ClearLunchBreak: professional=%s", professionalID)

	if err := s.lunchRepo.Delete(ctx, professionalID); err != nil {
		s.logger.Error("ClearLunchBreak: repository error for professional=%s: %v", professionalID, err)
		return fmt.Errorf("%w: Clear - repository error: %v", ErrInternal, err)
	}
	return nil
}

// ExclusionWindow возвращает [start, start+60) обеда или nil
func (s *Service) ExclusionWindow(ctx context.Context, professionalID string) (*domain.ExclusionWindow, error) {
	lb, err := s.Get(ctx, professionalID)
	if err != nil || lb == nil {
		return nil, err
	}
	window := lb.Window()
	return &window, nil
}

// ValidateStart проверяет, что обед начинается на получасовой границе между 09:00 и 15:00
func ValidateStart(start timegrid.Minute) error {
	if !start.Aligned(domain.SlotMinutes) {
		return fmt.Errorf("%w: start must be a multiple of %d minutes", ErrInvalidStart, domain.SlotMinutes)
	}
	if start < domain.LunchEarliest || start > domain.LunchLatest {
		return fmt.Errorf("%w: start must be between %s and %s", ErrInvalidStart, domain.LunchEarliest, domain.LunchLatest)
	}
	return nil
}
