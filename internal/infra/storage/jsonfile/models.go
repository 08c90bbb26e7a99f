package jsonfile

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// bookingRecord сериализованное представление бронирования
// Даты и метки времени хранятся строками ISO-8601
type bookingRecord struct {
	ID               string   `json:"id"`
	VenueID          string   `json:"venueId"`
	Date             string   `json:"date"` // YYYY-MM-DD
	TimeSlots        []string `json:"timeSlots"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Company          string   `json:"company"`
	Purpose          string   `json:"purpose"`
	Notes            *string  `json:"notes,omitempty"`
	Status           string   `json:"status"`
	ConfirmationCode string   `json:"confirmationCode"`
	CreatedAt        string   `json:"createdAt"` // RFC3339
	CancelledAt      *string  `json:"cancelledAt,omitempty"`
	CancelledBy      *string  `json:"cancelledBy,omitempty"`
	CancelReason     *string  `json:"cancelReason,omitempty"`
}

// auditRecord сериализованная запись журнала операций
type auditRecord struct {
	ID        string            `json:"id"`
	Timestamp string            `json:"timestamp"` // RFC3339
	Operation string            `json:"operation"`
	Details   map[string]string `json:"details"`
}

func toBookingRecord(b *domain.Booking) *bookingRecord {
	record := &bookingRecord{
		ID:               b.ID,
		VenueID:          b.VenueID,
		Date:             b.Date.Format(domain.DateFormat),
		TimeSlots:        append([]string(nil), b.TimeSlots...),
		Name:             b.Name,
		Email:            b.Email,
		Phone:            b.Phone,
		Company:          b.Company,
		Purpose:          b.Purpose,
		Notes:            b.Notes,
		Status:           string(b.Status),
		ConfirmationCode: b.ConfirmationCode,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339Nano),
		CancelReason:     b.CancelReason,
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339Nano)
		record.CancelledAt = &cancelledAt
	}
	if b.CancelledBy != nil {
		cancelledBy := string(*b.CancelledBy)
		record.CancelledBy = &cancelledBy
	}

	return record
}

// toDomainBooking восстанавливает типизированные метки времени из строк
func (r *bookingRecord) toDomainBooking() (*domain.Booking, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("booking %s: parse date: %w", r.ID, err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("booking %s: parse createdAt: %w", r.ID, err)
	}

	booking := &domain.Booking{
		ID:               r.ID,
		VenueID:          r.VenueID,
		Date:             date,
		TimeSlots:        append([]string(nil), r.TimeSlots...),
		Name:             r.Name,
		Email:            r.Email,
		Phone:            r.Phone,
		Company:          r.Company,
		Purpose:          r.Purpose,
		Notes:            r.Notes,
		Status:           domain.BookingStatus(r.Status),
		ConfirmationCode: r.ConfirmationCode,
		CreatedAt:        createdAt,
		CancelReason:     r.CancelReason,
	}

	if r.CancelledAt != nil {
		cancelledAt, err := time.Parse(time.RFC3339Nano, *r.CancelledAt)
		if err != nil {
			return nil, fmt.Errorf("booking %s: parse cancelledAt: %w", r.ID, err)
		}
		booking.CancelledAt = &cancelledAt
	}
	if r.CancelledBy != nil {
		cancelledBy := domain.CancelActor(*r.CancelledBy)
		booking.CancelledBy = &cancelledBy
	}

	return booking, nil
}

func toAuditRecord(e *domain.AuditEntry) *auditRecord {
	details := make(map[string]string, len(e.Details))
	for k, v := range e.Details {
		details[k] = v
	}

	return &auditRecord{
		ID:        e.ID,
		Timestamp: e.Timestamp.Format(time.RFC3339Nano),
		Operation: string(e.Operation),
		Details:   details,
	}
}

func (r *auditRecord) toDomainEntry() (*domain.AuditEntry, error) {
	timestamp, err := time.Parse(time.RFC3339Nano, r.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("audit %s: parse timestamp: %w", r.ID, err)
	}

	return &domain.AuditEntry{
		ID:        r.ID,
		Timestamp: timestamp,
		Operation: domain.AuditOperation(r.Operation),
		Details:   r.Details,
	}, nil
}
