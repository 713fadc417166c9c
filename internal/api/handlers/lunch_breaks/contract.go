package lunch_breaks

import (
	"context"

	"github.com/fideslex/booking-service/internal/domain"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

type LunchBreakService interface {
	Get(ctx context.Context, professionalID string) (*domain.LunchBreak, error)
	Set(ctx context.Context, professionalID string, start timegrid.Minute) (*domain.LunchBreak, error)
	Clear(ctx context.Context, professionalID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
