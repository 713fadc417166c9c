package convert_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fideslex/booking-service/internal/api/handlers"
	"github.com/fideslex/booking-service/internal/api/middleware"
	"github.com/fideslex/booking-service/internal/domain"
	convertRequest "github.com/fideslex/booking-service/internal/usecase/convert_request"
	createBooking "github.com/fideslex/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestID   = "ID de solicitud inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgMissingUser        = "usuario no autenticado"
	msgInvalidInput       = "serviceId y professionalId son obligatorios"
	msgRequestNotFound    = "solicitud no encontrada"
	msgAlreadyProcessed   = "la solicitud ya fue procesada"
	msgServiceNotFound    = "servicio no encontrado"
	msgNotAssigned        = "el asesor no presta este servicio"
	msgOutOfGrid          = "el horario debe empezar en múltiplos de 30 minutos entre las 09:00 y las 16:00"
	msgClosedOnWeekend    = "no se atiende en fin de semana"
	msgPastSlot           = "no se puede reservar en el pasado"
	msgLunchBreak         = "el horario coincide con la pausa de comida del asesor"
	msgSlotBooked         = "el horario ya está reservado"
	msgInvalidBooking     = "datos de la cita inválidos"
)

type Handler struct {
	useCase ConvertRequestUseCase
	dates   DateParser
	logger  Logger
}

func NewHandler(useCase ConvertRequestUseCase, dates DateParser, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		dates:   dates,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointment-requests/{id}/convert
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("POST /appointment-requests/{id}/convert - Invalid request ID: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	caller, ok := middleware.GetCaller(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req ConvertRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointment-requests/{id}/convert - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(id, h.dates, caller)
	if err != nil {
		h.logger.Warn("POST /appointment-requests/{id}/convert - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, id, err)
		return
	}

	h.logger.Info("POST /appointment-requests/{id}/convert - Request id=%d converted: appointment_id=%d, email_sent=%t, account_created=%t",
		id, result.Appointment.ID, result.EmailSent, result.AccountCreated)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, id int64, err error) {
	switch {
	case errors.Is(err, convertRequest.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)
	case errors.Is(err, convertRequest.ErrRequestNotFound):
		handlers.RespondNotFound(w, msgRequestNotFound)
	case errors.Is(err, convertRequest.ErrAlreadyProcessed):
		handlers.RespondConflict(w, msgAlreadyProcessed)
	case errors.Is(err, convertRequest.ErrServiceNotFound), errors.Is(err, createBooking.ErrServiceNotFound):
		handlers.RespondNotFound(w, msgServiceNotFound)
	case errors.Is(err, convertRequest.ErrNotAssigned):
		handlers.RespondBadRequest(w, msgNotAssigned)
	case errors.Is(err, createBooking.ErrOutOfGrid):
		handlers.RespondBadRequest(w, msgOutOfGrid)
	case errors.Is(err, createBooking.ErrClosedOnWeekend):
		handlers.RespondBadRequest(w, msgClosedOnWeekend)
	case errors.Is(err, createBooking.ErrPastSlot):
		handlers.RespondBadRequest(w, msgPastSlot)
	case errors.Is(err, createBooking.ErrLunchBreak):
		handlers.RespondConflict(w, msgLunchBreak)
	case errors.Is(err, createBooking.ErrSlotBooked):
		handlers.RespondConflict(w, msgSlotBooked)
	case errors.Is(err, domain.ErrValidation):
		handlers.RespondBadRequest(w, msgInvalidBooking)
	default:
		h.logger.Error("POST /appointment-requests/{id}/convert - Failed to convert request id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}
	h.logger.Warn("POST /appointment-requests/{id}/convert - Request id=%d rejected: %v", id, err)
}
