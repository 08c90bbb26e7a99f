package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// createAuditEntry строит запись журнала для создания бронирования
// Details - снимок полей на момент операции, не ссылка на живую запись
func createAuditEntry(booking *domain.Booking, now time.Time) *domain.AuditEntry {
	return &domain.AuditEntry{
		ID:        uuid.NewString(),
		Timestamp: now,
		Operation: domain.AuditOperationCreate,
		Details: map[string]string{
			"booking_id":        booking.ID,
			"booker":            booking.Name,
			"company":           booking.Company,
			"venue":             booking.VenueID,
			"date":              booking.Date.Format(domain.DateFormat),
			"slots":             strings.Join(booking.TimeSlots, ", "),
			"phone":             booking.Phone,
			"email":             booking.Email,
			"confirmation_code": booking.ConfirmationCode,
		},
	}
}

// cancelAuditEntry строит запись журнала для отмены бронирования
func cancelAuditEntry(booking *domain.Booking, now time.Time) *domain.AuditEntry {
	reason := "not provided"
	if booking.CancelReason != nil && *booking.CancelReason != "" {
		reason = *booking.CancelReason
	}

	cancelledBy := ""
	if booking.CancelledBy != nil {
		cancelledBy = string(*booking.CancelledBy)
	}

	return &domain.AuditEntry{
		ID:        uuid.NewString(),
		Timestamp: now,
		Operation: domain.AuditOperationCancel,
		Details: map[string]string{
			"booking_id":   booking.ID,
			"booker":       booking.Name,
			"cancelled_by": cancelledBy,
			"venue":        booking.VenueID,
			"date":         booking.Date.Format(domain.DateFormat),
			"slots":        strings.Join(booking.TimeSlots, ", "),
			"reason":       reason,
		},
	}
}
