package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-VenueBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VenueID   string   `json:"venueId"`
	Date      string   `json:"date"` // YYYY-MM-DD
	TimeSlots []string `json:"timeSlots"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Company   string   `json:"company"`
	Purpose   string   `json:"purpose"`
	Notes     *string  `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в модель usecase
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date %q: %w", r.Date, err)
	}

	return &createBooking.Request{
		VenueID:   r.VenueID,
		Date:      date,
		TimeSlots: r.TimeSlots,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Company:   r.Company,
		Purpose:   r.Purpose,
		Notes:     r.Notes,
	}, nil
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
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
	CreatedAt        string   `json:"createdAt"`
}

// FromUseCaseResponse конвертирует модель usecase в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:               resp.ID,
		VenueID:          resp.VenueID,
		Date:             resp.Date.Format(domain.DateFormat),
		TimeSlots:        resp.TimeSlots,
		Name:             resp.Name,
		Email:            resp.Email,
		Phone:            resp.Phone,
		Company:          resp.Company,
		Purpose:          resp.Purpose,
		Notes:            resp.Notes,
		Status:           resp.Status,
		ConfirmationCode: resp.ConfirmationCode,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
}
