package create_booking

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// ReservationStore интерфейс хранилища бронирований
// Create атомарно проверяет конфликты и фиксирует запись
type ReservationStore interface {
	Create(ctx context.Context, draft *domain.Booking) (*domain.Booking, error)
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
