package update_appointment_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fideslex/booking-service/internal/api/handlers"
	"github.com/fideslex/booking-service/internal/api/middleware"
	"github.com/fideslex/booking-service/internal/domain"
	"github.com/fideslex/booking-service/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "ID de cita inválido"
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgMissingUser          = "usuario no autenticado"
	msgInvalidStatus        = "estado inválido, se espera pending, finalized o cancelled"
	msgNotFound             = "cita no encontrada"
	msgForbidden            = "solo el asesor asignado o un administrador puede modificar la cita"
	msgSlotTaken            = "el horario ya está reservado"
)

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

// Handle PATCH /api/v1/appointments/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid appointment ID: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	caller, ok := middleware.GetCaller(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), caller, id, domain.AppointmentStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid status: %q", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Appointment not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id}/status - Access denied: id=%d, user_id=%s", id, caller.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrSlotTaken):
			h.logger.Warn("PATCH /appointments/{id}/status - Slot taken on restore: id=%d", id)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("PATCH /appointments/{id}/status - Failed to update status: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - Appointment id=%d set to %s by user_id=%s", id, updated.Status, caller.UserID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromAppointment(updated))
}
