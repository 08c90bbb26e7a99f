package export_bookings

import (
	"context"
	"io"

	bookingmodels "github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
)

type ReportsService interface {
	ExportBookings(ctx context.Context, venueID *string) ([]*bookingmodels.BookingResponse, error)
	WriteBookingsCSV(ctx context.Context, w io.Writer, venueID *string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
