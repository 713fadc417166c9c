package create_booking

import (
	"context"
	"time"

	"github.com/fideslex/booking-service/internal/domain"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

// AppointmentRepository интерфейс журнала записей
type AppointmentRepository interface {
	ExistsAt(ctx context.Context, professionalID string, startAt time.Time) (bool, error)
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
}

// LunchResolver интерфейс получения обеденного исключения специалиста
type LunchResolver interface {
	ExclusionWindow(ctx context.Context, professionalID string) (*domain.ExclusionWindow, error)
}

// ProfileRepository интерфейс хранилища профилей
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}

// Grid календарная сетка бизнес-часового пояса
type Grid interface {
	ToAbsolute(date time.Time, minute timegrid.Minute) time.Time
	IsWeekend(date time.Time) bool
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// BookingRecorder учет исходов бронирования
type BookingRecorder interface {
	RecordBooking(source, outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
