package create_booking

import (
	"time"

	"github.com/fideslex/booking-service/internal/domain"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

// Источники бронирования (метка метрик)
const (
	SourceDirect     = "direct"
	SourceConversion = "conversion"
)

// Request модель запроса на бронирование
type Request struct {
	ProfessionalID string
	Date           time.Time       // Календарный день
	StartMinute    timegrid.Minute // Минута начала от полуночи
	Client         Client
	ServiceIDs     []int64
	// Caller авторизованный пользователь; для клиента данные клиента берутся из его профиля
	Caller *domain.Caller
	Source string
}

// Client данные клиента записи (все поля необязательны)
type Client struct {
	ID    *string
	Name  *string
	Email *string
}

// Response созданная запись
type Response struct {
	Appointment *domain.Appointment
}
