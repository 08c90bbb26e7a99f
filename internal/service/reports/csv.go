package reports

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	bookingmodels "github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
)

var csvHeader = []string{
	"id", "venue_id", "date", "time_slots",
	"name", "email", "phone", "company", "purpose", "notes",
	"status", "confirmation_code", "created_at",
	"cancelled_by", "cancelled_at", "cancel_reason",
}

// WriteBookingsCSV пишет выгрузку бронирований в формате CSV
// Порядок строк совпадает с ExportBookings: новые первыми
func (s *Service) WriteBookingsCSV(ctx context.Context, w io.Writer, venueID *string) error {
	bookings, err := s.ExportBookings(ctx, venueID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	for _, b := range bookings {
		if err := cw.Write(bookingCSVRow(b)); err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("WriteBookingsCSV: exported %d bookings", len(bookings))
	return nil
}

func bookingCSVRow(b *bookingmodels.BookingResponse) []string {
	return []string{
		b.ID,
		b.VenueID,
		b.Date.Format(domain.DateFormat),
		strings.Join(b.TimeSlots, ";"),
		b.Name,
		b.Email,
		b.Phone,
		b.Company,
		b.Purpose,
		strDeref(b.Notes),
		b.Status,
		b.ConfirmationCode,
		b.CreatedAt.Format(time.RFC3339),
		strDeref(b.CancelledBy),
		timeDeref(b.CancelledAt),
		strDeref(b.CancelReason),
	}
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func timeDeref(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
