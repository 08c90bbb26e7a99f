package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// CancelActor represents who initiated the cancellation
type CancelActor string

const (
	CancelledByUser  CancelActor = "user"
	CancelledByAdmin CancelActor = "admin"
)

// IsValidCancelActor проверяет, что значение актора допустимо
func IsValidCancelActor(actor CancelActor) bool {
	return actor == CancelledByUser || actor == CancelledByAdmin
}

// Booking represents a venue reservation in the system
type Booking struct {
	ID        string
	VenueID   string
	Date      time.Time // Дата бронирования (без времени)
	TimeSlots []string  // Слоты вида "09:00-09:30", без дубликатов

	// Контактные данные бронирующего
	Name    string
	Email   string
	Phone   string
	Company string
	Purpose string
	Notes   *string

	Status           BookingStatus
	ConfirmationCode string

	CancelReason *string
	CancelledBy  *CancelActor
	CancelledAt  *time.Time

	CreatedAt time.Time
}

// IsConfirmed returns true if the booking still holds its slots
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
// Отмена односторонняя: возврат из cancelled в confirmed невозможен
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// Clone возвращает глубокую копию бронирования
// Используется хранилищем, чтобы читатели не видели промежуточных состояний
func (b *Booking) Clone() *Booking {
	clone := *b

	clone.TimeSlots = make([]string, len(b.TimeSlots))
	copy(clone.TimeSlots, b.TimeSlots)

	if b.Notes != nil {
		notes := *b.Notes
		clone.Notes = &notes
	}
	if b.CancelReason != nil {
		reason := *b.CancelReason
		clone.CancelReason = &reason
	}
	if b.CancelledBy != nil {
		by := *b.CancelledBy
		clone.CancelledBy = &by
	}
	if b.CancelledAt != nil {
		at := *b.CancelledAt
		clone.CancelledAt = &at
	}

	return &clone
}

// BookingsFilter фильтр для выборки бронирований
// Все условия комбинируются через логическое И
type BookingsFilter struct {
	VenueID   *string        // Фильтр по площадке (опционально)
	Status    *BookingStatus // Фильтр по статусу (опционально, nil - все статусы)
	Search    string         // Поиск подстроки в имени/email/телефоне/компании/цели (без учёта регистра)
	StartDate *time.Time     // Начало периода включительно (опционально)
	EndDate   *time.Time     // Конец периода включительно (опционально)
}

// Matches проверяет, что бронирование удовлетворяет всем условиям фильтра
func (f *BookingsFilter) Matches(b *Booking) bool {
	if f.VenueID != nil && b.VenueID != *f.VenueID {
		return false
	}
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	if f.Search != "" && !matchesSearch(b, f.Search) {
		return false
	}
	if f.StartDate != nil && dateOnly(b.Date).Before(dateOnly(*f.StartDate)) {
		return false
	}
	if f.EndDate != nil && dateOnly(b.Date).After(dateOnly(*f.EndDate)) {
		return false
	}
	return true
}

// SameDate проверяет, что две даты относятся к одному календарному дню
func SameDate(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// dateOnly обнуляет время, чтобы сравнивать только даты
func dateOnly(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}
