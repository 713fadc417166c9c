package get_client_appointments

import (
	"context"

	"github.com/fideslex/booking-service/internal/domain"
)

type AppointmentService interface {
	ListForClient(ctx context.Context, clientID string) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
