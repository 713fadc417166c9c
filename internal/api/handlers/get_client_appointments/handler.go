package get_client_appointments

import (
	"net/http"

	"github.com/fideslex/booking-service/internal/api/handlers"
	"github.com/fideslex/booking-service/internal/api/middleware"
)

const msgMissingUser = "usuario no autenticado"

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/me/appointments
// Перед выдачей прошедшие записи клиента переводятся в finalized
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCaller(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	list, err := h.service.ListForClient(r.Context(), caller.UserID)
	if err != nil {
		h.logger.Error("GET /clients/me/appointments - Failed to list appointments: user_id=%s, error=%v", caller.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients/me/appointments - %d appointments for user_id=%s", len(list), caller.UserID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromAppointments(list))
}
