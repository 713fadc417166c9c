package requests

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fideslex/booking-service/internal/domain"
	profileRepo "github.com/fideslex/booking-service/internal/infra/storage/profile"
	"github.com/fideslex/booking-service/internal/service/requests/models"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

// Service прием и просмотр заявок на запись
type Service struct {
	requestRepo RequestRepository
	profileRepo ProfileRepository
	grid        Grid
	validate    *validator.Validate
	logger      Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(requestRepo RequestRepository, profileRepo ProfileRepository, grid Grid, logger Logger) *Service {
	return &Service{
		requestRepo: requestRepo,
		profileRepo: profileRepo,
		grid:        grid,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		logger:      logger,
	}
}

// Submit сохраняет заявку. caller == nil для гостя.
// Гость обязан указать имя, email и телефон; авторизованному они подставляются из профиля.
func (s *Service) Submit(ctx context.Context, caller *domain.Caller, in models.SubmitRequest) (*domain.AppointmentRequest, error) {
	in.ServiceName = strings.TrimSpace(in.ServiceName)
	in.ClientName = strings.TrimSpace(in.ClientName)
	in.ClientEmail = strings.TrimSpace(in.ClientEmail)
	in.ClientPhone = strings.TrimSpace(in.ClientPhone)

	// 1. Валидация полей
	if err := s.validate.Struct(in); err != nil {
		s.logger.Warn("SubmitRequest: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, describe(err))
	}

	date, err := s.grid.ParseDate(in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	req := &domain.AppointmentRequest{
		ServiceName:        in.ServiceName,
		ClientName:         in.ClientName,
		ClientEmail:        in.ClientEmail,
		ClientPhone:        in.ClientPhone,
		DesiredDate:        date,
		DesiredStartMinute: timegrid.Minute(*in.StartMinute),
		Message:            in.Message,
	}

	// 2. Контакты: из профиля для авторизованных, обязательные для гостей
	if caller != nil {
		req.ClientID = &caller.UserID
		if err := s.fillFromProfile(ctx, caller.UserID, req); err != nil {
			return nil, err
		}
	}
	if req.ClientName == "" || req.ClientEmail == "" || (caller == nil && req.ClientPhone == "") {
		s.logger.Warn("SubmitRequest: missing contact data (guest=%t)", caller == nil)
		return nil, ErrContactRequired
	}

	// 3. Сохраняем
	created, err := s.requestRepo.Create(ctx, req)
	if err != nil {
		s.logger.Error("SubmitRequest: repository error: %v", err)
		return nil, fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SubmitRequest: created request id=%d, service=%q, date=%s, start=%s",
		created.ID, created.ServiceName, in.Date, created.DesiredStartMinute)
	return created, nil
}

// List возвращает заявки, видимые вызывающему.
// Клиент видит только свои; сотрудник все или отфильтрованные по клиенту.
func (s *Service) List(ctx context.Context, caller domain.Caller, in models.ListRequest) ([]*domain.AppointmentRequest, error) {
	filter := domain.RequestFilter{Limit: ClampLimit(in.Limit)}

	switch {
	case !caller.IsStaff() || in.Scope == models.ScopeOwn:
		filter.ClientID = &caller.UserID
	case in.ClientID != nil && *in.ClientID != "":
		filter.ClientID = in.ClientID
	}

	list, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListRequests: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// ClampLimit приводит limit к [1, 200]; 0 означает значение по умолчанию
func ClampLimit(limit int) int {
	switch {
	case limit == 0:
		return domain.DefaultRequestListLimit
	case limit < 1:
		return 1
	case limit > domain.MaxRequestListLimit:
		return domain.MaxRequestListLimit
	}
	return limit
}

func (s *Service) fillFromProfile(ctx context.Context, userID string, req *domain.AppointmentRequest) error {
	if req.ClientName != "" && req.ClientEmail != "" && req.ClientPhone != "" {
		return nil
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return nil
		}
		s.logger.Error("SubmitRequest: failed to load profile=%s: %v", userID, err)
		return fmt.Errorf("%w: Submit - get profile: %v", ErrInternal, err)
	}

	if req.ClientName == "" {
		req.ClientName = profile.FullName()
	}
	if req.ClientEmail == "" {
		req.ClientEmail = profile.Email
	}
	if req.ClientPhone == "" {
		req.ClientPhone = profile.Phone
	}
	return nil
}

// describe превращает ошибки валидатора в короткое перечисление полей
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s(%s)", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
