package submit_request

import (
	"errors"
	"net/http"

	"github.com/fideslex/booking-service/internal/api/handlers"
	"github.com/fideslex/booking-service/internal/api/middleware"
	"github.com/fideslex/booking-service/internal/domain"
	"github.com/fideslex/booking-service/internal/service/requests"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidInput       = "datos de la solicitud inválidos"
	msgContactRequired    = "nombre, email y teléfono son obligatorios"
)

type Handler struct {
	service RequestService
	logger  Logger
}

func NewHandler(service RequestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointment-requests
// Доступно гостям; для авторизованного клиента контакты берутся из профиля
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointment-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var caller *domain.Caller
	if c, ok := middleware.GetCaller(r.Context()); ok {
		caller = &c
	}

	created, err := h.service.Submit(r.Context(), caller, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, requests.ErrContactRequired):
			h.logger.Warn("POST /appointment-requests - Missing contact data")
			handlers.RespondBadRequest(w, msgContactRequired)

		case errors.Is(err, requests.ErrInvalidInput):
			h.logger.Warn("POST /appointment-requests - Invalid input: %v", err)
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidInput+": "+detail(err))

		default:
			h.logger.Error("POST /appointment-requests - Failed to submit request: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointment-requests - Request created: id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromRequest(created))
}

// detail отрезает вид ошибки, оставляя перечень полей
func detail(err error) string {
	msg := err.Error()
	prefix := requests.ErrInvalidInput.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
