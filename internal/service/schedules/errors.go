package schedules

import (
	"errors"
	"fmt"

	"github.com/fideslex/booking-service/internal/domain"
)

var (
	// ErrInvalidSlot возвращается, когда интервал не кратен 30 минутам или выходит за 09:00-16:00
	ErrInvalidSlot = fmt.Errorf("%w: invalid schedule slot", domain.ErrValidation)

	// ErrDuplicateSlot возвращается, когда такой интервал уже есть в каталоге
	ErrDuplicateSlot = fmt.Errorf("%w: schedule slot already exists", domain.ErrConflict)

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = fmt.Errorf("%w: schedule slot not found", domain.ErrNotFound)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedules.service: internal error")
)
