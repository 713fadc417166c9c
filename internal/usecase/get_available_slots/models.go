package get_available_slots

import (
	"time"

	"github.com/fideslex/booking-service/pkg/timegrid"
)

// Request модель запроса доступных слотов
type Request struct {
	ProfessionalID string    // ID специалиста
	Date           time.Time // Календарный день (учитываются только год, месяц, день)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	ProfessionalID string
	Date           time.Time
	Slots          []Slot // По возрастанию начала
}

// Slot свободный получасовой слот
type Slot struct {
	StartMinute timegrid.Minute
	Start       time.Time
	End         time.Time
}
