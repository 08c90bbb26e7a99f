package reports

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// ReservationStore интерфейс хранилища для построения отчетов
type ReservationStore interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Export(ctx context.Context, venueID *string) ([]*domain.Booking, error)
	AuditLog(ctx context.Context) ([]*domain.AuditEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
