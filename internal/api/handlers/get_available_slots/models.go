package get_available_slots

import (
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-VenueBookingService/internal/usecase/get_available_slots"
)

// SlotResponse слот суточного каталога
type SlotResponse struct {
	ID     string `json:"id"`
	Booked bool   `json:"booked"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	VenueID  string         `json:"venueId"`
	Date     string         `json:"date"`
	Slots    []SlotResponse `json:"slots"`
	Occupied []string       `json:"occupied"`
	MaxSlots int            `json:"maxSlots"`
}

// FromUseCaseResponse конвертирует модель usecase в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{ID: s.ID, Booked: s.Booked})
	}

	return &AvailableSlotsResponse{
		VenueID:  resp.VenueID,
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    slots,
		Occupied: resp.Occupied,
		MaxSlots: resp.MaxSlots,
	}
}
