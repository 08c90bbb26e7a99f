package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/reports/models"
)

type fakeStore struct {
	bookings []*domain.Booking
	audit    []*domain.AuditEntry

	lastFilter domain.BookingsFilter
}

func (s *fakeStore) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	s.lastFilter = filter

	result := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if filter.Matches(b) {
			result = append(result, b.Clone())
		}
	}
	return result, nil
}

func (s *fakeStore) Export(ctx context.Context, venueID *string) ([]*domain.Booking, error) {
	return s.List(ctx, domain.BookingsFilter{VenueID: venueID})
}

func (s *fakeStore) AuditLog(ctx context.Context) ([]*domain.AuditEntry, error) {
	return s.audit, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func seedBookings() []*domain.Booking {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	reason := "maintenance"
	by := domain.CancelledByAdmin
	at := date.Add(10 * time.Hour)

	return []*domain.Booking{
		{
			ID:        "booking-1",
			VenueID:   "studio-large",
			Date:      date,
			TimeSlots: []string{"09:00-09:30", "09:30-10:00"},
			Name:      "Anna Petrova",
			Email:     "anna@example.com",
			Phone:     "+7 900 123-45-67",
			Company:   "Fujiwara Records",
			Purpose:   "Rehearsal",
			Status:    domain.StatusConfirmed,
			CreatedAt: date.Add(-time.Hour),
		},
		{
			ID:           "booking-2",
			VenueID:      "practice-room",
			Date:         date.AddDate(0, 0, 1),
			TimeSlots:    []string{"15:00-15:30"},
			Name:         "Boris Ivanov",
			Email:        "boris@example.com",
			Phone:        "+7 911 000-11-22",
			Company:      "Other",
			Purpose:      "Recording",
			Status:       domain.StatusCancelled,
			CancelReason: &reason,
			CancelledBy:  &by,
			CancelledAt:  &at,
			CreatedAt:    date.Add(-2 * time.Hour),
		},
	}
}

func TestListBookings(t *testing.T) {
	ctx := context.Background()

	t.Run("stats count slots of confirmed bookings only", func(t *testing.T) {
		svc := NewService(&fakeStore{bookings: seedBookings()}, noopLogger{})

		resp, err := svc.ListBookings(ctx, &models.ListBookingsRequest{})
		require.NoError(t, err)

		assert.Equal(t, 2, resp.Stats.Total)
		assert.Equal(t, 1, resp.Stats.Confirmed)
		assert.Equal(t, 1, resp.Stats.Cancelled)
		assert.Equal(t, 2, resp.Stats.TotalSlots)
	})

	t.Run("filters are forwarded and ANDed", func(t *testing.T) {
		fs := &fakeStore{bookings: seedBookings()}
		svc := NewService(fs, noopLogger{})

		venue := "studio-large"
		status := string(domain.StatusConfirmed)
		resp, err := svc.ListBookings(ctx, &models.ListBookingsRequest{
			VenueID: &venue,
			Status:  &status,
			Search:  "anna",
		})
		require.NoError(t, err)

		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, "booking-1", resp.Bookings[0].ID)
		require.NotNil(t, fs.lastFilter.Status)
		assert.Equal(t, domain.StatusConfirmed, *fs.lastFilter.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		svc := NewService(&fakeStore{bookings: seedBookings()}, noopLogger{})

		status := "pending"
		_, err := svc.ListBookings(ctx, &models.ListBookingsRequest{Status: &status})
		assert.ErrorIs(t, err, ErrInvalidFilter)
	})

	t.Run("inverted date range rejected", func(t *testing.T) {
		svc := NewService(&fakeStore{bookings: seedBookings()}, noopLogger{})

		start := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		_, err := svc.ListBookings(ctx, &models.ListBookingsRequest{StartDate: &start, EndDate: &end})
		assert.ErrorIs(t, err, ErrInvalidFilter)
	})
}

func TestWriteBookingsCSV(t *testing.T) {
	svc := NewService(&fakeStore{bookings: seedBookings()}, noopLogger{})

	var buf bytes.Buffer
	require.NoError(t, svc.WriteBookingsCSV(context.Background(), &buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // заголовок + 2 записи

	assert.Equal(t, csvHeader, rows[0])

	byID := map[string][]string{rows[1][0]: rows[1], rows[2][0]: rows[2]}

	confirmed := byID["booking-1"]
	require.NotNil(t, confirmed)
	assert.Equal(t, "studio-large", confirmed[1])
	assert.Equal(t, "2026-03-14", confirmed[2])
	assert.Equal(t, "09:00-09:30;09:30-10:00", confirmed[3])
	assert.Equal(t, string(domain.StatusConfirmed), confirmed[10])
	assert.Empty(t, confirmed[13]) // нет отмены

	cancelled := byID["booking-2"]
	require.NotNil(t, cancelled)
	assert.Equal(t, string(domain.StatusCancelled), cancelled[10])
	assert.Equal(t, "admin", cancelled[13])
	assert.Equal(t, "maintenance", cancelled[15])
}

func TestAuditLog(t *testing.T) {
	fs := &fakeStore{
		audit: []*domain.AuditEntry{
			{
				ID:        "entry-1",
				Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
				Operation: domain.AuditOperationCreate,
				Details:   map[string]string{"booking_id": "booking-1"},
			},
		},
	}
	svc := NewService(fs, noopLogger{})

	entries, err := svc.AuditLog(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "create", entries[0].Operation)
	assert.Equal(t, "booking-1", entries[0].Details["booking_id"])
}
