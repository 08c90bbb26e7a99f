package create_booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/venues"
)

type fakeStore struct {
	createCalls int
	created     *domain.Booking
	err         error
}

func (s *fakeStore) Create(ctx context.Context, draft *domain.Booking) (*domain.Booking, error) {
	s.createCalls++
	if s.err != nil {
		return nil, s.err
	}

	booking := draft.Clone()
	booking.ID = "booking-001"
	booking.ConfirmationCode = "code12345678"
	booking.Status = domain.StatusConfirmed
	booking.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.created = booking
	return booking, nil
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

func testVenue() *domain.VenueConfig {
	return &domain.VenueConfig{
		ID:        "studio-large",
		Name:      "Large Studio",
		MaxSlots:  4,
		Companies: []string{"Fujiwara Records", "Other"},
		Purposes:  []string{"Rehearsal", "Recording"},
	}
}

func validRequest() *Request {
	return &Request{
		VenueID:   "studio-large",
		Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		TimeSlots: []string{"09:00-09:30", "09:30-10:00"},
		Name:      "Anna Petrova",
		Email:     "anna@example.com",
		Phone:     "+7 900 123-45-67",
		Company:   "Fujiwara Records",
		Purpose:   "Rehearsal",
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	store := &fakeStore{}
	uc := NewUseCase(store, &fakeRegistry{venue: testVenue()}, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "booking-001", resp.ID)
	assert.Equal(t, "code12345678", resp.ConfirmationCode)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 1, store.createCalls)
}

func TestCreateBookingValidation(t *testing.T) {
	mutate := func(fn func(*Request)) *Request {
		req := validRequest()
		fn(req)
		return req
	}

	longNotes := strings.Repeat("x", domain.MaxNotesLength+1)

	tests := []struct {
		name string
		req  *Request
	}{
		{"empty name", mutate(func(r *Request) { r.Name = "   " })},
		{"invalid email", mutate(func(r *Request) { r.Email = "not-an-email" })},
		{"email with spaces", mutate(func(r *Request) { r.Email = "a b@example.com" })},
		{"phone too short", mutate(func(r *Request) { r.Phone = "123" })},
		{"phone with letters", mutate(func(r *Request) { r.Phone = "phone123456" })},
		{"empty company", mutate(func(r *Request) { r.Company = "" })},
		{"empty purpose", mutate(func(r *Request) { r.Purpose = "" })},
		{"zero date", mutate(func(r *Request) { r.Date = time.Time{} })},
		{"no slots", mutate(func(r *Request) { r.TimeSlots = nil })},
		{"unknown slot", mutate(func(r *Request) { r.TimeSlots = []string{"09:00-10:00"} })},
		{"duplicate slot", mutate(func(r *Request) { r.TimeSlots = []string{"09:00-09:30", "09:00-09:30"} })},
		{"notes too long", mutate(func(r *Request) { r.Notes = &longNotes })},
		{"company not in venue list", mutate(func(r *Request) { r.Company = "Unknown Corp" })},
		{"purpose not in venue list", mutate(func(r *Request) { r.Purpose = "Party" })},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			uc := NewUseCase(store, &fakeRegistry{venue: testVenue()}, noopLogger{})

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrValidation)

			// Хранилище не трогается при отбраковке заявки
			assert.Zero(t, store.createCalls)
		})
	}
}

func TestCreateBookingMaxSlotsCheckedBeforeStore(t *testing.T) {
	store := &fakeStore{}
	uc := NewUseCase(store, &fakeRegistry{venue: testVenue()}, noopLogger{})

	req := validRequest()
	req.TimeSlots = []string{
		"09:00-09:30", "09:30-10:00", "10:00-10:30", "10:30-11:00", "11:00-11:30",
	}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, store.createCalls)
}

func TestCreateBookingAdminOnlyVenue(t *testing.T) {
	adminOnlyVenue := testVenue()
	adminOnlyVenue.AdminOnly = true

	t.Run("rejected without admin access before store is touched", func(t *testing.T) {
		store := &fakeStore{}
		uc := NewUseCase(store, &fakeRegistry{venue: adminOnlyVenue}, noopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrAdminOnlyVenue)
		assert.Zero(t, store.createCalls)
	})

	t.Run("allowed with admin access", func(t *testing.T) {
		store := &fakeStore{}
		uc := NewUseCase(store, &fakeRegistry{venue: adminOnlyVenue}, noopLogger{})

		req := validRequest()
		req.AdminAccess = true

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "booking-001", resp.ID)
		assert.Equal(t, 1, store.createCalls)
	})

	t.Run("public venue needs no admin access", func(t *testing.T) {
		store := &fakeStore{}
		uc := NewUseCase(store, &fakeRegistry{venue: testVenue()}, noopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, 1, store.createCalls)
	})
}

func TestCreateBookingVenueNotFound(t *testing.T) {
	store := &fakeStore{}
	uc := NewUseCase(store, &fakeRegistry{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrVenueNotFound)
	assert.Zero(t, store.createCalls)
}

func TestCreateBookingPassesStoreErrorsThrough(t *testing.T) {
	storeErr := &conflictStub{}
	store := &fakeStore{err: storeErr}
	uc := NewUseCase(store, &fakeRegistry{venue: testVenue()}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, storeErr)
}

// conflictStub минимальная ошибка-заглушка для проверки проброса
type conflictStub struct{}

func (e *conflictStub) Error() string { return "slots already booked" }
