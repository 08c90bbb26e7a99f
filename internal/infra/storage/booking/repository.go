package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/psqlbuilder"
)

// Repository postgres-хранилище бронирований
//
// Реализует контракт BookingPersister хранилища: авторитетная коллекция
// живет в памяти, сюда записи попадают синхронно на каждой мутации
// (write-through), а при старте сервиса поднимаются целиком через LoadAll
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LoadAll загружает все бронирования, включая отменённые
func (r *Repository) LoadAll(ctx context.Context) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"venue_id",
		"booking_date",
		"time_slots",
		"name",
		"email",
		"phone",
		"company",
		"purpose",
		"notes",
		"status",
		"confirmation_code",
		"created_at",
		"cancelled_at",
		"cancelled_by",
		"cancel_reason",
	).
		From("bookings").
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Persist сохраняет бронирование: вставка новой записи или обновление
// статуса и полей отмены существующей
func (r *Repository) Persist(ctx context.Context, booking *domain.Booking) error {
	var cancelledBy *string
	if booking.CancelledBy != nil {
		by := string(*booking.CancelledBy)
		cancelledBy = &by
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"venue_id",
			"booking_date",
			"time_slots",
			"name",
			"email",
			"phone",
			"company",
			"purpose",
			"notes",
			"status",
			"confirmation_code",
			"created_at",
			"cancelled_at",
			"cancelled_by",
			"cancel_reason",
		).
		Values(
			booking.ID,
			booking.VenueID,
			booking.Date,
			pq.Array(booking.TimeSlots),
			booking.Name,
			booking.Email,
			booking.Phone,
			booking.Company,
			booking.Purpose,
			booking.Notes,
			booking.Status,
			booking.ConfirmationCode,
			booking.CreatedAt,
			booking.CancelledAt,
			cancelledBy,
			booking.CancelReason,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			cancelled_at = EXCLUDED.cancelled_at,
			cancelled_by = EXCLUDED.cancelled_by,
			cancel_reason = EXCLUDED.cancel_reason`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Persist - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Persist - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var timeSlots pq.StringArray
		var cancelledAt sql.NullTime
		var cancelledBy, cancelReason, notes sql.NullString

		err := rows.Scan(
			&booking.ID,
			&booking.VenueID,
			&booking.Date,
			&timeSlots,
			&booking.Name,
			&booking.Email,
			&booking.Phone,
			&booking.Company,
			&booking.Purpose,
			&notes,
			&booking.Status,
			&booking.ConfirmationCode,
			&booking.CreatedAt,
			&cancelledAt,
			&cancelledBy,
			&cancelReason,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.TimeSlots = []string(timeSlots)
		if notes.Valid {
			booking.Notes = &notes.String
		}
		if cancelledAt.Valid {
			booking.CancelledAt = &cancelledAt.Time
		}
		if cancelledBy.Valid {
			actor := domain.CancelActor(cancelledBy.String)
			booking.CancelledBy = &actor
		}
		if cancelReason.Valid {
			booking.CancelReason = &cancelReason.String
		}

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
