package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

func sampleBooking(id string) *domain.Booking {
	notes := "bring own cables"
	return &domain.Booking{
		ID:               id,
		VenueID:          "studio-large",
		Date:             time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		TimeSlots:        []string{"09:00-09:30", "09:30-10:00"},
		Name:             "Anna Petrova",
		Email:            "anna@example.com",
		Phone:            "+7 900 123-45-67",
		Company:          "Fujiwara Records",
		Purpose:          "Rehearsal",
		Notes:            &notes,
		Status:           domain.StatusConfirmed,
		ConfirmationCode: "code12345678",
		CreatedAt:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestBookingStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "bookings.json")

	storage := NewBookingStorage(path)
	require.NoError(t, storage.Persist(ctx, sampleBooking("booking-1")))
	require.NoError(t, storage.Persist(ctx, sampleBooking("booking-2")))

	// Новый экземпляр читает файл с нуля
	reopened := NewBookingStorage(path)
	loaded, err := reopened.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	byID := make(map[string]*domain.Booking, len(loaded))
	for _, b := range loaded {
		byID[b.ID] = b
	}

	got := byID["booking-1"]
	require.NotNil(t, got)
	want := sampleBooking("booking-1")
	assert.Equal(t, want.VenueID, got.VenueID)
	assert.True(t, domain.SameDate(want.Date, got.Date))
	assert.Equal(t, want.TimeSlots, got.TimeSlots)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Email, got.Email)
	assert.Equal(t, want.Phone, got.Phone)
	require.NotNil(t, got.Notes)
	assert.Equal(t, *want.Notes, *got.Notes)
	assert.Equal(t, want.Status, got.Status)
	assert.Equal(t, want.ConfirmationCode, got.ConfirmationCode)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
}

func TestBookingStoragePersistsCancellationMetadata(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bookings.json")

	storage := NewBookingStorage(path)
	require.NoError(t, storage.Persist(ctx, sampleBooking("booking-1")))

	// Upsert той же записи с отменой
	cancelled := sampleBooking("booking-1")
	by := domain.CancelledByAdmin
	at := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)
	reason := "maintenance"
	cancelled.Status = domain.StatusCancelled
	cancelled.CancelledBy = &by
	cancelled.CancelledAt = &at
	cancelled.CancelReason = &reason
	require.NoError(t, storage.Persist(ctx, cancelled))

	reopened := NewBookingStorage(path)
	loaded, err := reopened.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	got := loaded[0]
	assert.Equal(t, domain.StatusCancelled, got.Status)
	require.NotNil(t, got.CancelledBy)
	assert.Equal(t, domain.CancelledByAdmin, *got.CancelledBy)
	require.NotNil(t, got.CancelledAt)
	assert.True(t, at.Equal(*got.CancelledAt))
	require.NotNil(t, got.CancelReason)
	assert.Equal(t, reason, *got.CancelReason)
}

func TestBookingStorageMissingFileIsEmpty(t *testing.T) {
	storage := NewBookingStorage(filepath.Join(t.TempDir(), "missing.json"))

	loaded, err := storage.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestBookingStorageRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	storage := NewBookingStorage(path)
	_, err := storage.LoadAll(context.Background())
	assert.ErrorIs(t, err, ErrDecode)
}

func TestAuditStorageAppendAndLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "audit.log")

	storage := NewAuditStorage(path)

	first := &domain.AuditEntry{
		ID:        "entry-1",
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Operation: domain.AuditOperationCreate,
		Details:   map[string]string{"booking_id": "booking-1", "venue": "studio-large"},
	}
	second := &domain.AuditEntry{
		ID:        "entry-2",
		Timestamp: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		Operation: domain.AuditOperationCancel,
		Details:   map[string]string{"booking_id": "booking-1", "reason": "not provided"},
	}

	require.NoError(t, storage.Append(ctx, first))
	require.NoError(t, storage.Append(ctx, second))

	loaded, err := NewAuditStorage(path).LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Порядок записи сохраняется
	assert.Equal(t, "entry-1", loaded[0].ID)
	assert.Equal(t, domain.AuditOperationCreate, loaded[0].Operation)
	assert.True(t, first.Timestamp.Equal(loaded[0].Timestamp))
	assert.Equal(t, first.Details, loaded[0].Details)

	assert.Equal(t, "entry-2", loaded[1].ID)
	assert.Equal(t, domain.AuditOperationCancel, loaded[1].Operation)
}

func TestAuditStorageMissingFileIsEmpty(t *testing.T) {
	storage := NewAuditStorage(filepath.Join(t.TempDir(), "missing.log"))

	loaded, err := storage.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
