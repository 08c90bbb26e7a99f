package get_venue_bookings

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/reports"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/reports/models"
)

const (
	msgInvalidFilter    = "некорректные параметры фильтра"
	msgInvalidStartDate = "некорректный формат startDate, ожидается YYYY-MM-DD"
	msgInvalidEndDate   = "некорректный формат endDate, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/admin/bookings
// Query params: venueId, status, search, startDate, endDate (все опциональны)
// Условия комбинируются через логическое И
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListBookingsRequest{
		Search: query.Get("search"),
	}

	if venueID := query.Get("venueId"); venueID != "" {
		req.VenueID = &venueID
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	startDate, err := parseDateParam(query, "startDate")
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartDate)
		return
	}
	req.StartDate = startDate

	endDate, err := parseDateParam(query, "endDate")
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEndDate)
		return
	}
	req.EndDate = endDate

	resp, err := h.service.ListBookings(r.Context(), req)
	if err != nil {
		if errors.Is(err, reports.ErrInvalidFilter) {
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - Listed %d bookings", resp.Stats.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(resp))
}

func parseDateParam(query url.Values, name string) (*time.Time, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil
	}
	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
