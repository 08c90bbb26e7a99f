package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/venues"
)

type fakeStore struct {
	occupied []string
}

func (s *fakeStore) OccupiedSlots(ctx context.Context, venueID string, date time.Time) []string {
	return s.occupied
}

type fakeRegistry struct {
	venue *domain.VenueConfig
}

func (r *fakeRegistry) Get(venueID string) (*domain.VenueConfig, error) {
	if r.venue == nil || r.venue.ID != venueID {
		return nil, venues.ErrVenueNotFound
	}
	return r.venue, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestGetAvailableSlots(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	venue := &domain.VenueConfig{ID: "studio-large", MaxSlots: 4}

	t.Run("full day catalog annotated with occupancy", func(t *testing.T) {
		uc := NewUseCase(
			&fakeStore{occupied: []string{"09:00-09:30", "15:00-15:30"}},
			&fakeRegistry{venue: venue},
			noopLogger{},
		)

		resp, err := uc.Execute(ctx, &Request{VenueID: "studio-large", Date: date})
		require.NoError(t, err)

		require.Len(t, resp.Slots, domain.SlotsPerDay)
		assert.Equal(t, []string{"09:00-09:30", "15:00-15:30"}, resp.Occupied)
		assert.Equal(t, 4, resp.MaxSlots)

		booked := 0
		for _, slot := range resp.Slots {
			if slot.Booked {
				booked++
				assert.Contains(t, resp.Occupied, slot.ID)
			}
		}
		assert.Equal(t, 2, booked)
	})

	t.Run("empty day", func(t *testing.T) {
		uc := NewUseCase(&fakeStore{}, &fakeRegistry{venue: venue}, noopLogger{})

		resp, err := uc.Execute(ctx, &Request{VenueID: "studio-large", Date: date})
		require.NoError(t, err)

		for _, slot := range resp.Slots {
			assert.False(t, slot.Booked)
		}
	})

	t.Run("unknown venue", func(t *testing.T) {
		uc := NewUseCase(&fakeStore{}, &fakeRegistry{}, noopLogger{})

		_, err := uc.Execute(ctx, &Request{VenueID: "missing", Date: date})
		assert.ErrorIs(t, err, ErrVenueNotFound)
	})

	t.Run("missing arguments", func(t *testing.T) {
		uc := NewUseCase(&fakeStore{}, &fakeRegistry{venue: venue}, noopLogger{})

		_, err := uc.Execute(ctx, &Request{Date: date})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(ctx, &Request{VenueID: "studio-large"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
