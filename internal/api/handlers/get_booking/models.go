package get_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               string   `json:"id"`
	VenueID          string   `json:"venueId"`
	Date             string   `json:"date"`
	TimeSlots        []string `json:"timeSlots"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Company          string   `json:"company"`
	Purpose          string   `json:"purpose"`
	Notes            *string  `json:"notes,omitempty"`
	Status           string   `json:"status"`
	ConfirmationCode string   `json:"confirmationCode"`
	CancelReason     *string  `json:"cancelReason,omitempty"`
	CancelledBy      *string  `json:"cancelledBy,omitempty"`
	CancelledAt      *string  `json:"cancelledAt,omitempty"`
	CreatedAt        string   `json:"createdAt"`
}

// FromServiceResponse конвертирует модель сервиса в HTTP response
func FromServiceResponse(b *models.BookingResponse) *BookingResponse {
	resp := &BookingResponse{
		ID:               b.ID,
		VenueID:          b.VenueID,
		Date:             b.Date.Format(domain.DateFormat),
		TimeSlots:        b.TimeSlots,
		Name:             b.Name,
		Email:            b.Email,
		Phone:            b.Phone,
		Company:          b.Company,
		Purpose:          b.Purpose,
		Notes:            b.Notes,
		Status:           b.Status,
		ConfirmationCode: b.ConfirmationCode,
		CancelReason:     b.CancelReason,
		CancelledBy:      b.CancelledBy,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}

	if b.CancelledAt != nil {
		at := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &at
	}

	return resp
}
