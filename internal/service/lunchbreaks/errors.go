package lunchbreaks

import (
	"errors"
	"fmt"

	"github.com/fideslex/booking-service/internal/domain"
)

var (
	// ErrInvalidStart возвращается, когда начало обеда не кратно 30 или вне 09:00-15:00
	ErrInvalidStart = fmt.Errorf("%w: invalid lunch break start", domain.ErrValidation)

	// ErrNotProfessional возвращается, когда у пользователя нет календаря (роль client)
	ErrNotProfessional = fmt.Errorf("%w: user is not staff or admin", domain.ErrValidation)

	// ErrProfessionalNotFound возвращается, когда профиль специалиста не найден
	ErrProfessionalNotFound = fmt.Errorf("%w: professional not found", domain.ErrNotFound)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("lunchbreaks.service: internal error")
)
