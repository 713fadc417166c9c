package convert_request

import (
	"context"
	"time"

	convertRequest "github.com/fideslex/booking-service/internal/usecase/convert_request"
)

type ConvertRequestUseCase interface {
	Execute(ctx context.Context, req *convertRequest.Request) (*convertRequest.Response, error)
}

type DateParser interface {
	ParseDate(s string) (time.Time, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
