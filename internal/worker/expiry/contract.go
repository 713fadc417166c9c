package expiry

import "context"

// Sweeper завершает просроченные pending-записи
type Sweeper interface {
	SweepAllExpired(ctx context.Context) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
