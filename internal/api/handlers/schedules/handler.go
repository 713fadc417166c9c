package schedules

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fideslex/booking-service/internal/api/handlers"
	"github.com/fideslex/booking-service/internal/service/schedules"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

const (
	msgInvalidSlotID      = "ID de horario inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgMissingBounds      = "startMinute y endMinute son obligatorios"
	msgInvalidSlot        = "el horario debe ser de 30 minutos entre las 09:00 y las 16:00"
	msgDuplicateSlot      = "el horario ya existe"
	msgSlotNotFound       = "horario no encontrado"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/schedules
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	slots, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /schedules - Failed to list schedules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	out := make([]*SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, FromSlot(s))
	}
	handlers.RespondJSON(w, http.StatusOK, out)
}

// Create POST /api/v1/schedules
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	start, end, ok := h.decodeBounds(w, r, "POST /schedules")
	if !ok {
		return
	}

	slot, err := h.service.Create(r.Context(), start, end)
	if err != nil {
		h.respondError(w, "POST /schedules", err)
		return
	}

	h.logger.Info("POST /schedules - Slot created: id=%d, %s-%s", slot.ID, slot.StartMinute, slot.EndMinute)
	handlers.RespondJSON(w, http.StatusCreated, FromSlot(slot))
}

// Update PUT /api/v1/schedules/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.slotID(w, r, "PUT /schedules/{id}")
	if !ok {
		return
	}
	start, end, ok := h.decodeBounds(w, r, "PUT /schedules/{id}")
	if !ok {
		return
	}

	slot, err := h.service.Update(r.Context(), id, start, end)
	if err != nil {
		h.respondError(w, "PUT /schedules/{id}", err)
		return
	}

	h.logger.Info("PUT /schedules/{id} - Slot updated: id=%d, %s-%s", slot.ID, slot.StartMinute, slot.EndMinute)
	handlers.RespondJSON(w, http.StatusOK, FromSlot(slot))
}

// Delete DELETE /api/v1/schedules/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.slotID(w, r, "DELETE /schedules/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /schedules/{id}", err)
		return
	}

	h.logger.Info("DELETE /schedules/{id} - Slot deleted: id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) slotID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("%s - Invalid slot ID: %v", route, mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return 0, false
	}
	return id, true
}

func (h *Handler) decodeBounds(w http.ResponseWriter, r *http.Request, route string) (timegrid.Minute, timegrid.Minute, bool) {
	var req SlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return 0, 0, false
	}
	if req.StartMinute == nil || req.EndMinute == nil {
		h.logger.Warn("%s - Missing bounds", route)
		handlers.RespondBadRequest(w, msgMissingBounds)
		return 0, 0, false
	}
	return timegrid.Minute(*req.StartMinute), timegrid.Minute(*req.EndMinute), true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, schedules.ErrInvalidSlot):
		h.logger.Warn("%s - Invalid slot: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidSlot)
	case errors.Is(err, schedules.ErrDuplicateSlot):
		h.logger.Warn("%s - Duplicate slot", route)
		handlers.RespondConflict(w, msgDuplicateSlot)
	case errors.Is(err, schedules.ErrSlotNotFound):
		h.logger.Warn("%s - Slot not found", route)
		handlers.RespondNotFound(w, msgSlotNotFound)
	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
