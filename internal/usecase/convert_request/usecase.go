package convert_request

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fideslex/booking-service/internal/domain"
	catalogRepo "github.com/fideslex/booking-service/internal/infra/storage/catalog"
	profileRepo "github.com/fideslex/booking-service/internal/infra/storage/profile"
	requestRepo "github.com/fideslex/booking-service/internal/infra/storage/request"
	"github.com/fideslex/booking-service/internal/integrations/identity"
	"github.com/fideslex/booking-service/internal/integrations/mailer"
	"github.com/fideslex/booking-service/internal/usecase/create_booking"
	"github.com/fideslex/booking-service/pkg/ptr"
)

// Исходы отправки письма (метка метрик)
const (
	notificationSent    = "sent"
	notificationFailed  = "failed"
	notificationSkipped = "skipped"
)

// UseCase перевод заявки клиента в запись
type UseCase struct {
	requestRepo     RequestRepository
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	profileRepo     ProfileRepository
	committer       BookingCommitter
	identity        IdentityProvider
	mailer          Mailer
	recorder        NotificationRecorder
	txManager       TransactionManager
	passwords       PasswordGenerator
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	requestRepo RequestRepository,
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	profileRepo ProfileRepository,
	committer BookingCommitter,
	identityProvider IdentityProvider,
	mailSender Mailer,
	recorder NotificationRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		requestRepo:     requestRepo,
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		profileRepo:     profileRepo,
		committer:       committer,
		identity:        identityProvider,
		mailer:          mailSender,
		recorder:        recorder,
		txManager:       txManager,
		passwords:       GeneratePassword,
		logger:          logger,
	}
}

// WithPasswordGenerator подменяет генератор временных паролей
func (uc *UseCase) WithPasswordGenerator(gen PasswordGenerator) *UseCase {
	uc.passwords = gen
	return uc
}

// Execute выполняет use case конвертации заявки.
// Запись и смена статуса заявки фиксируются одной транзакцией;
// создание учетной записи и письмо выполняются после коммита и не влияют на результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConvertRequest: request=%d, service=%d, professional=%s, by=%s",
		req.RequestID, req.ServiceID, req.ProfessionalID, callerID(req.Caller))

	// 1. Валидация идентификатора заявки
	if err := validateRequestID(req); err != nil {
		uc.logger.Warn("ConvertRequest: validation failed: %v", err)
		return nil, err
	}

	var (
		request     *domain.AppointmentRequest
		service     *domain.Service
		appointment *domain.Appointment
	)

	// 2. Транзакция: заявка -> параметры -> услуга -> смена статуса -> запись
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error

		// Сначала not found и already processed, затем параметры конвертации
		request, err = uc.loadOpenRequest(txCtx, req.RequestID)
		if err != nil {
			return err
		}

		if err := validateConversion(req); err != nil {
			uc.logger.Warn("ConvertRequest: validation failed: %v", err)
			return err
		}

		service, err = uc.checkService(txCtx, req.ServiceID, req.ProfessionalID)
		if err != nil {
			return err
		}

		// Условное обновление: вторая одновременная конвертация проигрывает здесь
		if err := uc.requestRepo.MarkScheduled(txCtx, request.ID); err != nil {
			if errors.Is(err, requestRepo.ErrAlreadyProcessed) {
				uc.logger.Warn("ConvertRequest: request=%d converted concurrently", request.ID)
				return ErrAlreadyProcessed
			}
			uc.logger.Error("ConvertRequest: failed to mark request=%d scheduled: %v", request.ID, err)
			return fmt.Errorf("%w: failed to mark request scheduled: %v", ErrInternal, err)
		}

		clientID := req.ClientID
		if clientID == nil {
			clientID = request.ClientID
		}

		booked, err := uc.committer.Execute(txCtx, uc.bookingRequest(req, request, clientID))
		if err != nil {
			uc.logger.Warn("ConvertRequest: booking for request=%d failed: %v", request.ID, err)
			return err
		}
		appointment = booked.Appointment

		if clientID != nil && !sameClient(request.ClientID, *clientID) {
			if err := uc.requestRepo.SetClient(txCtx, request.ID, *clientID); err != nil {
				uc.logger.Error("ConvertRequest: failed to link client to request=%d: %v", request.ID, err)
				return fmt.Errorf("%w: failed to link client: %v", ErrInternal, err)
			}
			request.ClientID = clientID
		}

		request.Status = domain.RequestScheduled
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ConvertRequest: request=%d converted into appointment=%d by=%s",
		request.ID, appointment.ID, callerID(req.Caller))

	resp := &Response{Appointment: appointment, Request: request}

	// 3. Учетная запись клиента (после коммита, без влияния на результат)
	var credentials *mailer.Credentials
	if appointment.ClientID == nil && request.ClientEmail != "" {
		credentials = uc.provisionAccount(ctx, request, appointment)
		resp.AccountCreated = credentials != nil
	}

	// 4. Письмо-подтверждение
	resp.EmailSent = uc.sendConfirmation(ctx, request, service, appointment, credentials)

	return resp, nil
}

// callerID идентификатор сотрудника для журнала
func callerID(caller *domain.Caller) string {
	if caller == nil {
		return "-"
	}
	return caller.UserID
}

func (uc *UseCase) loadOpenRequest(ctx context.Context, id int64) (*domain.AppointmentRequest, error) {
	request, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			uc.logger.Warn("ConvertRequest: request=%d not found", id)
			return nil, ErrRequestNotFound
		}
		uc.logger.Error("ConvertRequest: failed to get request=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
	}

	if !request.IsOpen() {
		uc.logger.Warn("ConvertRequest: request=%d has status %s", id, request.Status)
		return nil, ErrAlreadyProcessed
	}
	return request, nil
}

func (uc *UseCase) checkService(ctx context.Context, serviceID int64, professionalID string) (*domain.Service, error) {
	service, err := uc.catalogRepo.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("ConvertRequest: failed to get service=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	assigned, err := uc.catalogRepo.IsAssigned(ctx, serviceID, professionalID)
	if err != nil {
		uc.logger.Error("ConvertRequest: failed to check assignment: %v", err)
		return nil, fmt.Errorf("%w: failed to check assignment: %v", ErrInternal, err)
	}
	if !assigned {
		uc.logger.Warn("ConvertRequest: professional=%s is not assigned to service=%d", professionalID, serviceID)
		return nil, ErrNotAssigned
	}
	return service, nil
}

func (uc *UseCase) bookingRequest(req *Request, request *domain.AppointmentRequest, clientID *string) *create_booking.Request {
	date := request.DesiredDate
	if req.Date != nil {
		date = *req.Date
	}
	start := request.DesiredStartMinute
	if req.StartMinute != nil {
		start = *req.StartMinute
	}

	return &create_booking.Request{
		ProfessionalID: req.ProfessionalID,
		Date:           date,
		StartMinute:    start,
		Client: create_booking.Client{
			ID:    clientID,
			Name:  ptr.NonEmpty(request.ClientName),
			Email: ptr.NonEmpty(request.ClientEmail),
		},
		ServiceIDs: []int64{req.ServiceID},
		Source:     create_booking.SourceConversion,
	}
}

// provisionAccount создает учетную запись и профиль клиента и привязывает их к записи и заявке.
// Возвращает nil, если учетная запись не создана.
func (uc *UseCase) provisionAccount(ctx context.Context, request *domain.AppointmentRequest, appointment *domain.Appointment) *mailer.Credentials {
	password, err := uc.passwords()
	if err != nil {
		uc.logger.Error("ConvertRequest: failed to generate password: %v", err)
		return nil
	}

	name := strings.TrimSpace(request.ClientName)
	if name == "" {
		name = "Cliente"
	}

	account, err := uc.identity.SignUp(ctx, &identity.SignUpRequest{
		Email:    request.ClientEmail,
		Password: password,
		Name:     name,
	})
	if err != nil {
		uc.logger.Warn("ConvertRequest: account for %s not created: %v", request.ClientEmail, err)
		return nil
	}

	firstName, lastName := splitName(name)
	phone := request.ClientPhone
	if phone == "" {
		phone = "sin-telefono"
	}
	err = uc.profileRepo.Create(ctx, &domain.Profile{
		UserID:    account.ID,
		Role:      domain.RoleClient,
		FirstName: firstName,
		LastName:  lastName,
		Email:     request.ClientEmail,
		Phone:     phone,
	})
	if err != nil && !errors.Is(err, profileRepo.ErrProfileExists) {
		uc.logger.Error("ConvertRequest: failed to create profile for %s: %v", account.ID, err)
		return nil
	}

	if err := uc.appointmentRepo.SetClient(ctx, appointment.ID, account.ID); err != nil {
		uc.logger.Error("ConvertRequest: failed to link account to appointment=%d: %v", appointment.ID, err)
	} else {
		appointment.ClientID = ptr.Ptr(account.ID)
	}
	if err := uc.requestRepo.SetClient(ctx, request.ID, account.ID); err != nil {
		uc.logger.Error("ConvertRequest: failed to link account to request=%d: %v", request.ID, err)
	} else {
		request.ClientID = ptr.Ptr(account.ID)
	}

	uc.logger.Info("ConvertRequest: account %s created for %s", account.ID, request.ClientEmail)
	return &mailer.Credentials{Login: request.ClientEmail, Password: password}
}

func (uc *UseCase) sendConfirmation(
	ctx context.Context,
	request *domain.AppointmentRequest,
	service *domain.Service,
	appointment *domain.Appointment,
	credentials *mailer.Credentials,
) bool {
	if request.ClientEmail == "" {
		uc.recorder.RecordNotification(notificationSkipped)
		return false
	}

	advisor := ""
	if p, err := uc.profileRepo.GetByUserID(ctx, appointment.ProfessionalID); err == nil {
		advisor = p.FullName()
	} else if !errors.Is(err, profileRepo.ErrProfileNotFound) {
		uc.logger.Warn("ConvertRequest: failed to get advisor profile: %v", err)
	}

	err := uc.mailer.SendConfirmation(ctx, &mailer.Confirmation{
		To:          request.ClientEmail,
		ClientName:  request.ClientName,
		ServiceName: service.Name,
		StartAt:     appointment.StartAt,
		EndAt:       appointment.EndAt,
		AdvisorName: advisor,
		Credentials: credentials,
	})
	if err != nil {
		uc.logger.Error("ConvertRequest: confirmation email to %s failed: %v", request.ClientEmail, err)
		uc.recorder.RecordNotification(notificationFailed)
		return false
	}

	uc.recorder.RecordNotification(notificationSent)
	return true
}

func sameClient(current *string, clientID string) bool {
	return current != nil && *current == clientID
}

// splitName делит полное имя на имя и фамилию
func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "Cliente", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
