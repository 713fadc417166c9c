package create_booking

import (
	"fmt"

	"github.com/fideslex/booking-service/internal/domain"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProfessionalID == "" {
		return fmt.Errorf("%w: professionalId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceIds must be positive", ErrInvalidInput)
		}
	}

	return nil
}

// validateGrid проверяет, что слот лежит на сетке 09:00-16:00 с шагом 30 минут
func validateGrid(start timegrid.Minute) error {
	if !start.Aligned(domain.SlotMinutes) || start < domain.DayOpen || start >= domain.DayClose {
		return fmt.Errorf("%w: start %s", ErrOutOfGrid, start)
	}
	return nil
}
