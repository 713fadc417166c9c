package submit_request

import "github.com/fideslex/booking-service/internal/service/requests/models"

// SubmitRequest HTTP request model
type SubmitRequest struct {
	ServiceName string  `json:"serviceName"`
	Date        string  `json:"date"`
	StartMinute *int    `json:"startMinute"`
	ClientName  string  `json:"clientName,omitempty"`
	ClientEmail string  `json:"clientEmail,omitempty"`
	ClientPhone string  `json:"clientPhone,omitempty"`
	Message     *string `json:"message,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SubmitRequest) ToServiceRequest() models.SubmitRequest {
	return models.SubmitRequest{
		ServiceName: r.ServiceName,
		Date:        r.Date,
		StartMinute: r.StartMinute,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		ClientPhone: r.ClientPhone,
		Message:     r.Message,
	}
}
