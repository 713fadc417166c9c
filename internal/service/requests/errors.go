package requests

import (
	"errors"
	"fmt"

	"github.com/fideslex/booking-service/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных полях заявки
	ErrInvalidInput = fmt.Errorf("%w: invalid request data", domain.ErrValidation)

	// ErrContactRequired возвращается, когда гость не указал имя, email и телефон
	ErrContactRequired = fmt.Errorf("%w: name, email and phone are required", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("requests.service: internal error")
)
