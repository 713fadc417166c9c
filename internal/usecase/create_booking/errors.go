package create_booking

import (
	"errors"
	"fmt"

	"github.com/fideslex/booking-service/internal/domain"
)

var (
	// ErrOutOfGrid возвращается, когда начало не кратно 30 минутам или вне 09:00-16:00
	ErrOutOfGrid = fmt.Errorf("%w: out of grid bounds", domain.ErrValidation)

	// ErrClosedOnWeekend возвращается при попытке записи на субботу или воскресенье
	ErrClosedOnWeekend = fmt.Errorf("%w: closed on weekends", domain.ErrValidation)

	// ErrLunchBreak возвращается, когда слот попадает в обед специалиста
	ErrLunchBreak = fmt.Errorf("%w: lunch break", domain.ErrConflict)

	// ErrPastSlot возвращается, когда слот уже закончился
	ErrPastSlot = fmt.Errorf("%w: cannot book in the past", domain.ErrValidation)

	// ErrSlotBooked возвращается, когда слот специалиста уже занят
	ErrSlotBooked = fmt.Errorf("%w: slot already booked", domain.ErrConflict)

	// ErrServiceNotFound возвращается, когда запись ссылается на несуществующую услугу
	ErrServiceNotFound = fmt.Errorf("%w: service not found", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
