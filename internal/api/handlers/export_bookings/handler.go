package export_bookings

import (
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
)

const (
	msgInvalidFormat = "некорректный формат выгрузки, ожидается json или csv"

	formatJSON = "json"
	formatCSV  = "csv"
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

// Handle GET /api/v1/admin/bookings/export
// Query params: format (json|csv, по умолчанию json), venueId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var venueID *string
	if v := query.Get("venueId"); v != "" {
		venueID = &v
	}

	format := query.Get("format")
	if format == "" {
		format = formatJSON
	}

	switch format {
	case formatJSON:
		h.exportJSON(w, r, venueID)
	case formatCSV:
		h.exportCSV(w, r, venueID)
	default:
		h.logger.Warn("GET /admin/bookings/export - Invalid format %q", format)
		handlers.RespondBadRequest(w, msgInvalidFormat)
	}
}

func (h *Handler) exportJSON(w http.ResponseWriter, r *http.Request, venueID *string) {
	bookings, err := h.service.ExportBookings(r.Context(), venueID)
	if err != nil {
		h.logger.Error("GET /admin/bookings/export - Failed to export: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings/export - Exported %d bookings as json", len(bookings))
	handlers.RespondJSON(w, http.StatusOK, FromServiceBookings(bookings, time.Now().UTC()))
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request, venueID *string) {
	filename := fmt.Sprintf("bookings-%s.csv", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.service.WriteBookingsCSV(r.Context(), w, venueID); err != nil {
		// Заголовки могли уже уйти клиенту, ответ с ошибкой невозможен
		h.logger.Error("GET /admin/bookings/export - Failed to write csv: %v", err)
		return
	}

	h.logger.Info("GET /admin/bookings/export - Exported bookings as csv")
}
