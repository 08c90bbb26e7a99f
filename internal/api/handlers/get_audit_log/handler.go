package get_audit_log

import (
	"net/http"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
)

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/audit-log
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.AuditLog(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/audit-log - Failed to load audit log: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/audit-log - Returned %d entries", len(entries))
	handlers.RespondJSON(w, http.StatusOK, FromServiceEntries(entries))
}
