package create_booking

import (
	"errors"
	"net/http"

	"github.com/fideslex/booking-service/internal/api/handlers"
	"github.com/fideslex/booking-service/internal/api/middleware"
	createBooking "github.com/fideslex/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "cuerpo de la solicitud inválido"
	msgMissingStartMinute  = "startMinute es obligatorio"
	msgInvalidDate         = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgMissingUser         = "usuario no autenticado"
	msgOutOfGrid           = "el horario debe empezar en múltiplos de 30 minutos entre las 09:00 y las 16:00"
	msgClosedOnWeekend     = "no se atiende en fin de semana"
	msgLunchBreak          = "el horario coincide con la pausa de comida del asesor"
	msgPastSlot            = "no se puede reservar en el pasado"
	msgSlotBooked          = "el horario ya está reservado"
	msgServiceNotFound     = "servicio no encontrado"
	msgInvalidBookingInput = "datos de la cita inválidos"
)

type Handler struct {
	useCase CreateBookingUseCase
	dates   DateParser
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, dates DateParser, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		dates:   dates,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCaller(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing caller")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.StartMinute == nil {
		h.logger.Warn("POST /appointments - Missing start minute")
		handlers.RespondBadRequest(w, msgMissingStartMinute)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.dates, caller)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrOutOfGrid):
			h.logger.Warn("POST /appointments - Out of grid: professional_id=%s, start=%d", req.ProfessionalID, *req.StartMinute)
			handlers.RespondBadRequest(w, msgOutOfGrid)

		case errors.Is(err, createBooking.ErrClosedOnWeekend):
			h.logger.Warn("POST /appointments - Weekend: professional_id=%s, date=%s", req.ProfessionalID, req.Date)
			handlers.RespondBadRequest(w, msgClosedOnWeekend)

		case errors.Is(err, createBooking.ErrPastSlot):
			h.logger.Warn("POST /appointments - Past slot: professional_id=%s, date=%s", req.ProfessionalID, req.Date)
			handlers.RespondBadRequest(w, msgPastSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingInput)

		case errors.Is(err, createBooking.ErrLunchBreak):
			h.logger.Warn("POST /appointments - Lunch break: professional_id=%s, start=%d", req.ProfessionalID, *req.StartMinute)
			handlers.RespondConflict(w, msgLunchBreak)

		case errors.Is(err, createBooking.ErrSlotBooked):
			h.logger.Warn("POST /appointments - Slot booked: professional_id=%s, date=%s, start=%d",
				req.ProfessionalID, req.Date, *req.StartMinute)
			handlers.RespondConflict(w, msgSlotBooked)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_ids=%v", req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: professional_id=%s, error=%v",
				req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%d, professional_id=%s, user_id=%s",
		result.Appointment.ID, result.Appointment.ProfessionalID, caller.UserID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromAppointment(result.Appointment))
}
