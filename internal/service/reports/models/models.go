package models

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	bookingmodels "github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
)

// ListBookingsRequest параметры выборки бронирований
// Все заданные условия комбинируются через логическое И
type ListBookingsRequest struct {
	VenueID   *string
	Status    *string
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
}

// BookingsStats агрегаты по выборке
type BookingsStats struct {
	Total      int
	Confirmed  int
	Cancelled  int
	TotalSlots int // Суммарное число слотов в подтвержденных бронированиях
}

// ListBookingsResponse выборка с агрегатами
type ListBookingsResponse struct {
	Bookings []*bookingmodels.BookingResponse
	Stats    BookingsStats
}

// AuditEntryResponse запись журнала аудита
type AuditEntryResponse struct {
	ID        string
	Timestamp time.Time
	Operation string
	Details   map[string]string
}

// FromDomainAuditEntry конвертирует доменную запись аудита в response
func FromDomainAuditEntry(e *domain.AuditEntry) *AuditEntryResponse {
	return &AuditEntryResponse{
		ID:        e.ID,
		Timestamp: e.Timestamp,
		Operation: string(e.Operation),
		Details:   e.Details,
	}
}
