package get_available_slots

import (
	"context"
	"time"

	"github.com/fideslex/booking-service/internal/domain"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

// ScheduleRepository интерфейс каталога слотов
type ScheduleRepository interface {
	List(ctx context.Context) ([]*domain.ScheduleSlot, error)
}

// AppointmentRepository интерфейс журнала записей
type AppointmentRepository interface {
	FindByProfessionalAndDay(ctx context.Context, professionalID string, from, to time.Time) ([]*domain.Appointment, error)
}

// LunchResolver интерфейс получения обеденного исключения специалиста
type LunchResolver interface {
	ExclusionWindow(ctx context.Context, professionalID string) (*domain.ExclusionWindow, error)
}

// Grid календарная сетка бизнес-часового пояса
type Grid interface {
	DayRange(date time.Time) (time.Time, time.Time)
	ToAbsolute(date time.Time, minute timegrid.Minute) time.Time
	IsWeekend(date time.Time) bool
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
