package convert_request

import (
	"github.com/fideslex/booking-service/internal/api/handlers"
	"github.com/fideslex/booking-service/internal/domain"
	convertRequest "github.com/fideslex/booking-service/internal/usecase/convert_request"
	"github.com/fideslex/booking-service/pkg/ptr"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

// ConvertRequest HTTP request model
type ConvertRequest struct {
	ServiceID      int64   `json:"serviceId"`
	ProfessionalID string  `json:"professionalId"`
	Date           *string `json:"date,omitempty"`        // по умолчанию желаемая дата заявки
	StartMinute    *int    `json:"startMinute,omitempty"` // по умолчанию желаемое время заявки
	ClientID       *string `json:"clientId,omitempty"`
}

// ConvertResponse HTTP response model
type ConvertResponse struct {
	Appointment    *handlers.AppointmentResponse `json:"appointment"`
	Request        *handlers.RequestResponse     `json:"request"`
	EmailSent      bool                          `json:"emailSent"`
	AccountCreated bool                          `json:"accountCreated"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConvertRequest) ToUseCaseRequest(id int64, dates DateParser, caller domain.Caller) (*convertRequest.Request, error) {
	req := &convertRequest.Request{
		RequestID:      id,
		ServiceID:      r.ServiceID,
		ProfessionalID: r.ProfessionalID,
		ClientID:       r.ClientID,
		Caller:         &caller,
	}

	if r.Date != nil && *r.Date != "" {
		date, err := dates.ParseDate(*r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.StartMinute != nil {
		req.StartMinute = ptr.Ptr(timegrid.Minute(*r.StartMinute))
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *convertRequest.Response) *ConvertResponse {
	return &ConvertResponse{
		Appointment:    handlers.FromAppointment(resp.Appointment),
		Request:        handlers.FromRequest(resp.Request),
		EmailSent:      resp.EmailSent,
		AccountCreated: resp.AccountCreated,
	}
}
