package convert_request

import (
	"time"

	"github.com/fideslex/booking-service/internal/domain"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

// Request модель запроса на перевод заявки в запись
type Request struct {
	RequestID      int64
	ServiceID      int64
	ProfessionalID string
	// Date и StartMinute по умолчанию берутся из заявки
	Date        *time.Time
	StartMinute *timegrid.Minute
	// ClientID переопределяет клиента заявки
	ClientID *string
	Caller   *domain.Caller
}

// Response результат конвертации
type Response struct {
	Appointment    *domain.Appointment
	Request        *domain.AppointmentRequest
	EmailSent      bool
	AccountCreated bool
}
