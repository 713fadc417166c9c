package schedules

import (
	"github.com/fideslex/booking-service/internal/domain"
)

// SlotRequest HTTP request model
type SlotRequest struct {
	StartMinute *int `json:"startMinute"`
	EndMinute   *int `json:"endMinute"`
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID          int64  `json:"id"`
	StartMinute int    `json:"startMinute"`
	EndMinute   int    `json:"endMinute"`
	Start       string `json:"start"` // "09:00"
	End         string `json:"end"`
}

// FromSlot конвертирует слот каталога в HTTP модель
func FromSlot(s *domain.ScheduleSlot) *SlotResponse {
	return &SlotResponse{
		ID:          s.ID,
		StartMinute: int(s.StartMinute),
		EndMinute:   int(s.EndMinute),
		Start:       s.StartMinute.String(),
		End:         s.EndMinute.String(),
	}
}
