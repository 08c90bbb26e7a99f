package get_venue_config

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/venues"
)

const (
	msgMissingVenueID = "ID площадки обязателен"
	msgVenueNotFound  = "площадка не найдена"
)

type Handler struct {
	registry VenueRegistry
	logger   Logger
}

func NewHandler(registry VenueRegistry, logger Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
	}
}

// Handle GET /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID := vars["venueId"]
	if venueID == "" {
		h.logger.Warn("GET /venues/{id} - Missing venue ID")
		handlers.RespondBadRequest(w, msgMissingVenueID)
		return
	}

	venue, err := h.registry.Get(venueID)
	if err != nil {
		if errors.Is(err, venues.ErrVenueNotFound) {
			h.logger.Warn("GET /venues/{id} - Venue not found: venue=%s", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)
			return
		}
		h.logger.Error("GET /venues/{id} - Failed: venue=%s, error=%v", venueID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainVenue(venue))
}

// HandleList GET /api/v1/venues
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	all := h.registry.All()

	result := make([]*VenueConfigResponse, 0, len(all))
	for _, v := range all {
		result = append(result, FromDomainVenue(v))
	}

	handlers.RespondJSON(w, http.StatusOK, VenueListResponse{Venues: result})
}
