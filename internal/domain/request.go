package domain

import (
	"time"

	"github.com/fideslex/booking-service/pkg/timegrid"
)

// RequestStatus represents the state of an appointment request
type RequestStatus string

const (
	RequestRequested RequestStatus = "requested"
	RequestScheduled RequestStatus = "scheduled"
	// RequestPendingLegacy is written by older clients and treated as requested
	RequestPendingLegacy RequestStatus = "pending"
)

// OpenRequestStatuses statuses from which a request can still be converted
var OpenRequestStatuses = []RequestStatus{RequestRequested, RequestPendingLegacy}

// AppointmentRequest is a client's wish for an appointment, pending staff conversion
type AppointmentRequest struct {
	ID                 int64
	ServiceName        string
	ClientID           *string
	ClientName         string
	ClientEmail        string
	ClientPhone        string
	DesiredDate        time.Time
	DesiredStartMinute timegrid.Minute
	Message            *string
	Status             RequestStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsOpen reports whether the request has not been converted yet
func (r *AppointmentRequest) IsOpen() bool {
	for _, s := range OpenRequestStatuses {
		if r.Status == s {
			return true
		}
	}
	return false
}

// RequestFilter selects requests for listing
type RequestFilter struct {
	ClientID *string
	Limit    int
}
