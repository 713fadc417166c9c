package create_booking

import (
	"github.com/fideslex/booking-service/internal/domain"
	createBooking "github.com/fideslex/booking-service/internal/usecase/create_booking"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ProfessionalID string  `json:"professionalId"`
	Date           string  `json:"date"`        // "2025-03-12"
	StartMinute    *int    `json:"startMinute"` // 600 = 10:00
	ClientID       *string `json:"clientId,omitempty"`
	ClientName     *string `json:"clientName,omitempty"`
	ClientEmail    *string `json:"clientEmail,omitempty"`
	ServiceIDs     []int64 `json:"serviceIds"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(dates DateParser, caller domain.Caller) (*createBooking.Request, error) {
	date, err := dates.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ProfessionalID: r.ProfessionalID,
		Date:           date,
		StartMinute:    timegrid.Minute(*r.StartMinute),
		Client: createBooking.Client{
			ID:    r.ClientID,
			Name:  r.ClientName,
			Email: r.ClientEmail,
		},
		ServiceIDs: r.ServiceIDs,
		Caller:     &caller,
		Source:     createBooking.SourceDirect,
	}, nil
}
