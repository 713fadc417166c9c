package appointments

import (
	"context"
	"time"

	"github.com/fideslex/booking-service/internal/domain"
)

// AppointmentRepository интерфейс журнала записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	FindByProfessionalAndDay(ctx context.Context, professionalID string, from, to time.Time) ([]*domain.Appointment, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	SweepExpired(ctx context.Context, clientID string, now time.Time) (int64, error)
	SweepAllExpired(ctx context.Context, now time.Time) (int64, error)
}

// Grid календарная сетка бизнес-часового пояса
type Grid interface {
	DayRange(date time.Time) (time.Time, time.Time)
}

// ExpiryRecorder учет автоматически завершенных записей
type ExpiryRecorder interface {
	RecordExpired(trigger string, n int64)
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
