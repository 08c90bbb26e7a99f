package models

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// CancelBookingRequest запрос на отмену бронирования
// Для actor=user хотя бы одно из ClaimedEmail/ClaimedPhone обязательно
type CancelBookingRequest struct {
	Actor        domain.CancelActor
	Reason       *string
	ClaimedEmail string
	ClaimedPhone string
}

// BookingResponse представление бронирования для внешних потребителей
type BookingResponse struct {
	ID               string
	VenueID          string
	Date             time.Time
	TimeSlots        []string
	Name             string
	Email            string
	Phone            string
	Company          string
	Purpose          string
	Notes            *string
	Status           string
	ConfirmationCode string
	CancelReason     *string
	CancelledBy      *string
	CancelledAt      *time.Time
	CreatedAt        time.Time
}

// FromDomainBooking конвертирует доменную запись в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:               b.ID,
		VenueID:          b.VenueID,
		Date:             b.Date,
		TimeSlots:        b.TimeSlots,
		Name:             b.Name,
		Email:            b.Email,
		Phone:            b.Phone,
		Company:          b.Company,
		Purpose:          b.Purpose,
		Notes:            b.Notes,
		Status:           string(b.Status),
		ConfirmationCode: b.ConfirmationCode,
		CancelReason:     b.CancelReason,
		CancelledAt:      b.CancelledAt,
		CreatedAt:        b.CreatedAt,
	}

	if b.CancelledBy != nil {
		by := string(*b.CancelledBy)
		resp.CancelledBy = &by
	}

	return resp
}

// FromDomainBookingList конвертирует список доменных записей
func FromDomainBookingList(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return result
}
