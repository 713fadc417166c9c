package submit_request

import (
	"context"

	"github.com/fideslex/booking-service/internal/domain"
	"github.com/fideslex/booking-service/internal/service/requests/models"
)

type RequestService interface {
	Submit(ctx context.Context, caller *domain.Caller, in models.SubmitRequest) (*domain.AppointmentRequest, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
