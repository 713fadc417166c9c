package domain

import "time"

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentFinalized AppointmentStatus = "finalized"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is a known status
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentPending, AppointmentFinalized, AppointmentCancelled:
		return true
	}
	return false
}

// Appointment is a booked half-hour slot of a professional
type Appointment struct {
	ID             int64
	ProfessionalID string
	ClientID       *string
	ClientName     *string
	ClientEmail    *string
	StartAt        time.Time
	EndAt          time.Time
	Status         AppointmentStatus
	ServiceIDs     []int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OccupiesSlot reports whether the appointment blocks its start instant.
// Cancelled appointments free the slot.
func (a *Appointment) OccupiesSlot() bool {
	return a.Status != AppointmentCancelled
}

// BelongsTo reports whether the appointment is held by the given client
func (a *Appointment) BelongsTo(clientID string) bool {
	return a.ClientID != nil && *a.ClientID == clientID
}
