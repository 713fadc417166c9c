package convert_request

import (
	"errors"
	"fmt"

	"github.com/fideslex/booking-service/internal/domain"
)

var (
	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = fmt.Errorf("%w: appointment request not found", domain.ErrNotFound)

	// ErrAlreadyProcessed возвращается, когда заявка уже переведена в запись
	ErrAlreadyProcessed = fmt.Errorf("%w: already processed", domain.ErrConflict)

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = fmt.Errorf("%w: service not found", domain.ErrNotFound)

	// ErrNotAssigned возвращается, когда специалист не оказывает выбранную услугу
	ErrNotAssigned = fmt.Errorf("%w: professional is not assigned to the service", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("convert_request: internal error")
)
