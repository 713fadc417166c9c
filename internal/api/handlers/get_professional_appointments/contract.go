package get_professional_appointments

import (
	"context"
	"time"

	"github.com/fideslex/booking-service/internal/domain"
)

type AppointmentService interface {
	ListForProfessionalDay(ctx context.Context, professionalID string, date time.Time) ([]*domain.Appointment, error)
}

type DateParser interface {
	ParseDate(s string) (time.Time, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
