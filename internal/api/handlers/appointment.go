package handlers

import (
	"time"

	"github.com/fideslex/booking-service/internal/domain"
)

// AppointmentResponse запись в ответах API
type AppointmentResponse struct {
	ID             int64   `json:"id"`
	ProfessionalID string  `json:"professionalId"`
	ClientID       *string `json:"clientId"`
	ClientName     *string `json:"clientName"`
	ClientEmail    *string `json:"clientEmail"`
	StartAt        string  `json:"startAt"`
	EndAt          string  `json:"endAt"`
	Status         string  `json:"status"`
	ServiceIDs     []int64 `json:"serviceIds"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// FromAppointment конвертирует запись в HTTP модель
func FromAppointment(a *domain.Appointment) *AppointmentResponse {
	serviceIDs := a.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []int64{}
	}
	return &AppointmentResponse{
		ID:             a.ID,
		ProfessionalID: a.ProfessionalID,
		ClientID:       a.ClientID,
		ClientName:     a.ClientName,
		ClientEmail:    a.ClientEmail,
		StartAt:        a.StartAt.Format(time.RFC3339),
		EndAt:          a.EndAt.Format(time.RFC3339),
		Status:         string(a.Status),
		ServiceIDs:     serviceIDs,
		CreatedAt:      formatTime(a.CreatedAt),
		UpdatedAt:      formatTime(a.UpdatedAt),
	}
}

// FromAppointments конвертирует список записей
func FromAppointments(list []*domain.Appointment) []*AppointmentResponse {
	out := make([]*AppointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAppointment(a))
	}
	return out
}

// RequestResponse заявка в ответах API
type RequestResponse struct {
	ID          int64   `json:"id"`
	ServiceName string  `json:"serviceName"`
	ClientID    *string `json:"clientId"`
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	ClientPhone string  `json:"clientPhone"`
	Date        string  `json:"date"`
	StartMinute int     `json:"startMinute"`
	StartTime   string  `json:"startTime"`
	Message     *string `json:"message"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// FromRequest конвертирует заявку в HTTP модель
func FromRequest(r *domain.AppointmentRequest) *RequestResponse {
	return &RequestResponse{
		ID:          r.ID,
		ServiceName: r.ServiceName,
		ClientID:    r.ClientID,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		ClientPhone: r.ClientPhone,
		Date:        r.DesiredDate.Format(domain.DateFormat),
		StartMinute: int(r.DesiredStartMinute),
		StartTime:   r.DesiredStartMinute.String(),
		Message:     r.Message,
		Status:      string(r.Status),
		CreatedAt:   formatTime(r.CreatedAt),
		UpdatedAt:   formatTime(r.UpdatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
