package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/venues"
)

// UseCase use case для получения занятости площадки на дату
// Только чтение, состояние не мутирует
type UseCase struct {
	store    ReservationStore
	registry VenueRegistry
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store ReservationStore, registry VenueRegistry, logger Logger) *UseCase {
	return &UseCase{
		store:    store,
		registry: registry,
		logger:   logger,
	}
}

// Execute возвращает суточный каталог слотов с признаками занятости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.VenueID == "" {
		return nil, fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	venue, err := uc.registry.Get(req.VenueID)
	if err != nil {
		if errors.Is(err, venues.ErrVenueNotFound) {
			uc.logger.Warn("GetAvailableSlots: venue %q not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	occupied := uc.store.OccupiedSlots(ctx, req.VenueID, req.Date)

	occupiedSet := make(map[string]struct{}, len(occupied))
	for _, slot := range occupied {
		occupiedSet[slot] = struct{}{}
	}

	catalog := domain.GenerateDaySlots()
	slots := make([]Slot, 0, len(catalog))
	for _, id := range catalog {
		_, booked := occupiedSet[id]
		slots = append(slots, Slot{ID: id, Booked: booked})
	}

	uc.logger.Info("GetAvailableSlots: venue=%s date=%s occupied=%d/%d",
		req.VenueID, req.Date.Format(domain.DateFormat), len(occupied), len(catalog))

	return &Response{
		VenueID:  req.VenueID,
		Date:     req.Date,
		Slots:    slots,
		Occupied: occupied,
		MaxSlots: venue.MaxSlots,
	}, nil
}
