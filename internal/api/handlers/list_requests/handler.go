package list_requests

import (
	"net/http"
	"strconv"

	"github.com/fideslex/booking-service/internal/api/handlers"
	"github.com/fideslex/booking-service/internal/api/middleware"
	"github.com/fideslex/booking-service/internal/service/requests/models"
	"github.com/fideslex/booking-service/pkg/ptr"
)

const (
	msgMissingUser  = "usuario no autenticado"
	msgInvalidLimit = "limit debe ser un número entero"
	msgInvalidScope = "scope debe ser own o all"
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

// Handle GET /api/v1/appointment-requests
// Query params: scope (own|all), clientId, limit (1..200, по умолчанию 100)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCaller(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	query := r.URL.Query()

	scope := query.Get("scope")
	if scope != "" && scope != models.ScopeOwn && scope != models.ScopeAll {
		h.logger.Warn("GET /appointment-requests - Invalid scope: %q", scope)
		handlers.RespondBadRequest(w, msgInvalidScope)
		return
	}

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /appointment-requests - Invalid limit: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = n
	}

	list, err := h.service.List(r.Context(), caller, models.ListRequest{
		Scope:    scope,
		ClientID: ptr.NonEmpty(query.Get("clientId")),
		Limit:    limit,
	})
	if err != nil {
		h.logger.Error("GET /appointment-requests - Failed to list requests: user_id=%s, error=%v", caller.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	out := make([]*handlers.RequestResponse, 0, len(list))
	for _, req := range list {
		out = append(out, handlers.FromRequest(req))
	}

	h.logger.Info("GET /appointment-requests - %d requests for user_id=%s (%s)", len(out), caller.UserID, caller.Role)
	handlers.RespondJSON(w, http.StatusOK, out)
}
