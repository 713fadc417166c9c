package get_available_slots

import (
	"time"

	"github.com/fideslex/booking-service/internal/domain"
	getAvailableSlots "github.com/fideslex/booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ProfessionalID string         `json:"professionalId"`
	Date           string         `json:"date"`
	Slots          []SlotResponse `json:"slots"`
}

// SlotResponse свободный слот
type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Start: s.Start.Format(time.RFC3339),
			End:   s.End.Format(time.RFC3339),
		})
	}
	return &AvailableSlotsResponse{
		ProfessionalID: resp.ProfessionalID,
		Date:           resp.Date.Format(domain.DateFormat),
		Slots:          slots,
	}
}
