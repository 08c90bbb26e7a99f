package cancel_booking

import (
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
// Email/Phone подтверждают личность бронирующего, для админской отмены игнорируются
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
	Email  string  `json:"email,omitempty"`
	Phone  string  `json:"phone,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(actor domain.CancelActor) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		Actor:        actor,
		Reason:       r.Reason,
		ClaimedEmail: r.Email,
		ClaimedPhone: r.Phone,
	}
}
