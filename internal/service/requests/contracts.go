package requests

import (
	"context"
	"time"

	"github.com/fideslex/booking-service/internal/domain"
)

// RequestRepository интерфейс хранилища заявок
type RequestRepository interface {
	Create(ctx context.Context, req *domain.AppointmentRequest) (*domain.AppointmentRequest, error)
	List(ctx context.Context, filter domain.RequestFilter) ([]*domain.AppointmentRequest, error)
}

// ProfileRepository интерфейс хранилища профилей
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}

// Grid календарная сетка
type Grid interface {
	ParseDate(s string) (time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
