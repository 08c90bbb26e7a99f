package get_venue_config

import (
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

type VenueRegistry interface {
	Get(venueID string) (*domain.VenueConfig, error)
	All() []*domain.VenueConfig
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
