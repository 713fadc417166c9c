package schedules

import (
	"context"

	"github.com/fideslex/booking-service/internal/domain"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

// ScheduleRepository интерфейс каталога слотов
type ScheduleRepository interface {
	List(ctx context.Context) ([]*domain.ScheduleSlot, error)
	Create(ctx context.Context, start, end timegrid.Minute) (*domain.ScheduleSlot, error)
	Update(ctx context.Context, id int64, start, end timegrid.Minute) (*domain.ScheduleSlot, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
