package lunch_breaks

import (
	"time"

	"github.com/fideslex/booking-service/internal/domain"
)

// SetLunchBreakRequest HTTP request model
type SetLunchBreakRequest struct {
	StartMinute *int `json:"startMinute"`
}

// LunchBreakResponse HTTP response model; пустой ответ означает отсутствие обеда
type LunchBreakResponse struct {
	ProfessionalID string  `json:"professionalId"`
	StartMinute    *int    `json:"startMinute"`
	Start          *string `json:"start"`
	End            *string `json:"end"`
	UpdatedAt      *string `json:"updatedAt"`
}

// FromLunchBreak конвертирует обед в HTTP модель
func FromLunchBreak(professionalID string, lb *domain.LunchBreak) *LunchBreakResponse {
	resp := &LunchBreakResponse{ProfessionalID: professionalID}
	if lb == nil {
		return resp
	}

	window := lb.Window()
	start := int(lb.StartMinute)
	startStr := window.Start.String()
	endStr := window.End.String()
	updated := lb.UpdatedAt.Format(time.RFC3339)

	resp.StartMinute = &start
	resp.Start = &startStr
	resp.End = &endStr
	resp.UpdatedAt = &updated
	return resp
}
