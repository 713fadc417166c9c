package get_professional_appointments

import (
	"errors"
	"net/http"

	"github.com/fideslex/booking-service/internal/api/handlers"
	"github.com/fideslex/booking-service/internal/api/middleware"
	"github.com/fideslex/booking-service/internal/service/appointments"
)

const (
	msgMissingUser   = "usuario no autenticado"
	msgMissingDate   = "date es obligatorio"
	msgInvalidDate   = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidFilter = "filtro inválido"
)

type Handler struct {
	service AppointmentService
	dates   DateParser
	logger  Logger
}

func NewHandler(service AppointmentService, dates DateParser, logger Logger) *Handler {
	return &Handler{
		service: service,
		dates:   dates,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: professionalId (по умолчанию текущий пользователь), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCaller(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	query := r.URL.Query()
	professionalID := query.Get("professionalId")
	if professionalID == "" {
		professionalID = caller.UserID
	}

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /appointments - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := h.dates.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	list, err := h.service.ListForProfessionalDay(r.Context(), professionalID, date)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: professional_id=%s, date=%s, error=%v",
				professionalID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - %d appointments for professional_id=%s, date=%s", len(list), professionalID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromAppointments(list))
}
