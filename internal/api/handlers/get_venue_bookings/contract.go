package get_venue_bookings

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/reports/models"
)

type ReportsService interface {
	ListBookings(ctx context.Context, req *models.ListBookingsRequest) (*models.ListBookingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
