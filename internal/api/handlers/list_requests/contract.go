package list_requests

import (
	"context"

	"github.com/fideslex/booking-service/internal/domain"
	"github.com/fideslex/booking-service/internal/service/requests/models"
)

type RequestService interface {
	List(ctx context.Context, caller domain.Caller, in models.ListRequest) ([]*domain.AppointmentRequest, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
