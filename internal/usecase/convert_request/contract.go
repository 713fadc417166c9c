package convert_request

import (
	"context"

	"github.com/fideslex/booking-service/internal/domain"
	"github.com/fideslex/booking-service/internal/integrations/identity"
	"github.com/fideslex/booking-service/internal/integrations/mailer"
	"github.com/fideslex/booking-service/internal/usecase/create_booking"
)

// RequestRepository интерфейс хранилища заявок
type RequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.AppointmentRequest, error)
	MarkScheduled(ctx context.Context, id int64) error
	SetClient(ctx context.Context, id int64, clientID string) error
}

// AppointmentRepository интерфейс журнала записей
type AppointmentRepository interface {
	SetClient(ctx context.Context, id int64, clientID string) error
}

// CatalogRepository интерфейс каталога услуг
type CatalogRepository interface {
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	IsAssigned(ctx context.Context, serviceID int64, userID string) (bool, error)
}

// ProfileRepository интерфейс хранилища профилей
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	Create(ctx context.Context, p *domain.Profile) error
}

// BookingCommitter фиксация записи на слот
type BookingCommitter interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// IdentityProvider регистрация учетных записей клиентов
type IdentityProvider interface {
	SignUp(ctx context.Context, req *identity.SignUpRequest) (*identity.Account, error)
}

// Mailer отправка письма-подтверждения
type Mailer interface {
	SendConfirmation(ctx context.Context, c *mailer.Confirmation) error
}

// NotificationRecorder учет отправки писем
type NotificationRecorder interface {
	RecordNotification(outcome string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// PasswordGenerator генератор временных паролей
type PasswordGenerator func() (string, error)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
