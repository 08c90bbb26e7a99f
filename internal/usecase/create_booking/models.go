package create_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// Request модель запроса на создание бронирования
// AdminAccess выставляется транспортным слоем по факту прохождения
// админского маршрута, не по полю тела запроса
type Request struct {
	AdminAccess bool

	VenueID   string
	Date      time.Time // Дата бронирования (без времени)
	TimeSlots []string  // Слоты вида "09:00-09:30"
	Name      string
	Email     string
	Phone     string
	Company   string
	Purpose   string
	Notes     *string
}

// Response модель созданного бронирования
type Response struct {
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
	CreatedAt        time.Time
}

// fromDomainBooking конвертирует доменную запись в response
func fromDomainBooking(b *domain.Booking) *Response {
	return &Response{
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
		CreatedAt:        b.CreatedAt,
	}
}
