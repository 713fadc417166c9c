package lunch_breaks

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fideslex/booking-service/internal/api/handlers"
	"github.com/fideslex/booking-service/internal/service/lunchbreaks"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

const (
	msgMissingProfessionalID = "professionalId es obligatorio"
	msgInvalidRequestBody    = "cuerpo de la solicitud inválido"
	msgMissingStart          = "startMinute es obligatorio"
	msgInvalidStart          = "la pausa debe empezar en múltiplos de 30 minutos entre las 09:00 y las 15:00"
	msgNotProfessional       = "el usuario no es asesor"
	msgProfessionalNotFound  = "asesor no encontrado"
)

type Handler struct {
	service LunchBreakService
	logger  Logger
}

func NewHandler(service LunchBreakService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Get GET /api/v1/professionals/{professionalId}/lunch-break
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	professionalID, ok := h.professionalID(w, r, "GET /professionals/{id}/lunch-break")
	if !ok {
		return
	}

	lb, err := h.service.Get(r.Context(), professionalID)
	if err != nil {
		h.logger.Error("GET /professionals/{id}/lunch-break - Failed to get lunch break: professional_id=%s, error=%v", professionalID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromLunchBreak(professionalID, lb))
}

// Set PUT /api/v1/professionals/{professionalId}/lunch-break
func (h *Handler) Set(w http.ResponseWriter, r *http.Request) {
	professionalID, ok := h.professionalID(w, r, "PUT /professionals/{id}/lunch-break")
	if !ok {
		return
	}

	var req SetLunchBreakRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professionals/{id}/lunch-break - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.StartMinute == nil {
		handlers.RespondBadRequest(w, msgMissingStart)
		return
	}

	lb, err := h.service.Set(r.Context(), professionalID, timegrid.Minute(*req.StartMinute))
	if err != nil {
		switch {
		case errors.Is(err, lunchbreaks.ErrInvalidStart):
			h.logger.Warn("PUT /professionals/{id}/lunch-break - Invalid start: %d", *req.StartMinute)
			handlers.RespondBadRequest(w, msgInvalidStart)
		case errors.Is(err, lunchbreaks.ErrNotProfessional):
			h.logger.Warn("PUT /professionals/{id}/lunch-break - Not a professional: %s", professionalID)
			handlers.RespondBadRequest(w, msgNotProfessional)
		case errors.Is(err, lunchbreaks.ErrProfessionalNotFound):
			h.logger.Warn("PUT /professionals/{id}/lunch-break - Professional not found: %s", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)
		default:
			h.logger.Error("PUT /professionals/{id}/lunch-break - Failed to set lunch break: professional_id=%s, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /professionals/{id}/lunch-break - Lunch break of %s set to %s", professionalID, lb.StartMinute)
	handlers.RespondJSON(w, http.StatusOK, FromLunchBreak(professionalID, lb))
}

// Clear DELETE /api/v1/professionals/{professionalId}/lunch-break
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	professionalID, ok := h.professionalID(w, r, "DELETE /professionals/{id}/lunch-break")
	if !ok {
		return
	}

	if err := h.service.Clear(r.Context(), professionalID); err != nil {
		h.logger.Error("DELETE /professionals/{id}/lunch-break - Failed to clear lunch break: professional_id=%s, error=%v", professionalID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /professionals/{id}/lunch-break - Lunch break of %s cleared", professionalID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) professionalID(w http.ResponseWriter, r *http.Request, route string) (string, bool) {
	id := mux.Vars(r)["professionalId"]
	if id == "" {
		h.logger.Warn("%s - Missing professional ID", route)
		handlers.RespondBadRequest(w, msgMissingProfessionalID)
		return "", false
	}
	return id, true
}
