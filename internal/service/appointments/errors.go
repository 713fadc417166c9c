package appointments

import (
	"errors"
	"fmt"

	"github.com/fideslex/booking-service/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = fmt.Errorf("%w: appointment not found", domain.ErrNotFound)

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = fmt.Errorf("%w: invalid appointment status", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: invalid input data", domain.ErrValidation)

	// ErrAccessDenied возвращается, когда запись меняет не её специалист и не администратор
	ErrAccessDenied = fmt.Errorf("%w: only the assigned professional or an admin may change this appointment", domain.ErrForbidden)

	// ErrSlotTaken возвращается, когда восстановление отмененной записи упирается в занятый слот
	ErrSlotTaken = fmt.Errorf("%w: slot already booked", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments.service: internal error")
)
