package lunchbreaks

import (
	"context"

	"github.com/fideslex/booking-service/internal/domain"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

// LunchBreakRepository интерфейс хранилища обеденных перерывов
type LunchBreakRepository interface {
	Get(ctx context.Context, professionalID string) (*domain.LunchBreak, error)
	Upsert(ctx context.Context, professionalID string, start timegrid.Minute) (*domain.LunchBreak, error)
	Delete(ctx context.Context, professionalID string) error
}

// ProfileRepository интерфейс хранилища профилей
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
