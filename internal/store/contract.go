package store

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// BookingPersister интерфейс долговременного хранилища бронирований
// Persist обязан синхронно зафиксировать запись на диске (write-through):
// операция хранилища не считается завершенной до успешного flush
type BookingPersister interface {
	LoadAll(ctx context.Context) ([]*domain.Booking, error)
	Persist(ctx context.Context, booking *domain.Booking) error
}

// AuditStorage интерфейс журнала операций (append-only)
type AuditStorage interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
	LoadAll(ctx context.Context) ([]*domain.AuditEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
