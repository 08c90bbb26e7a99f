package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// ReservationStore интерфейс хранилища бронирований
type ReservationStore interface {
	OccupiedSlots(ctx context.Context, venueID string, date time.Time) []string
}

// VenueRegistry интерфейс справочника площадок
type VenueRegistry interface {
	Get(venueID string) (*domain.VenueConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
