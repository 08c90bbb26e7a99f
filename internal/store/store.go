package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// confirmationCodeAlphabet алфавит кода подтверждения
// Без похожих символов (0/O, 1/l), код показывается бронирующему
const confirmationCodeAlphabet = "23456789abcdefghjkmnpqrstuvwxyz"

// Store хранилище бронирований
//
// Владеет единственной авторитетной коллекцией в памяти и синхронизирует её
// с долговременным хранилищем по схеме write-through: каждая успешная мутация
// сброшена на диск до возврата управления. При отказе flush мутация в памяти
// откатывается, чтобы память не ушла вперёд диска.
//
// Все мутации (Create, Cancel) сериализуются эксклюзивной блокировкой:
// проверка конфликтов и коммит выполняются под одним захватом, поэтому
// гонка check-then-commit невозможна. Чтения идут под RLock и возвращают
// копии записей.
type Store struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking

	persister BookingPersister
	audit     AuditStorage

	timeProvider TimeProvider
	newID        func() string
	newCode      func() (string, error)

	logger Logger
}

// New создает новый экземпляр хранилища
func New(persister BookingPersister, audit AuditStorage, logger Logger) *Store {
	return &Store{
		bookings:     make(map[string]*domain.Booking),
		persister:    persister,
		audit:        audit,
		timeProvider: &RealTimeProvider{},
		newID:        uuid.NewString,
		newCode: func() (string, error) {
			return gonanoid.Generate(confirmationCodeAlphabet, domain.ConfirmationCodeLen)
		},
		logger: logger,
	}
}

// Load загружает все сохраненные бронирования в память
// Записи загружаются как есть, включая отменённые: история - append-only
// истина, инвариант отсутствия пересечений на ней повторно не проверяется
func (s *Store) Load(ctx context.Context) error {
	bookings, err := s.persister.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("%w: load bookings: %v", ErrStorage, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = make(map[string]*domain.Booking, len(bookings))
	for _, booking := range bookings {
		s.bookings[booking.ID] = booking
	}

	s.logger.Info("Store: loaded %d bookings from storage", len(bookings))
	return nil
}

// Create атомарно проверяет конфликты и фиксирует новое бронирование
//
// Черновик должен быть провалидирован вызывающей стороной (поля, лимиты
// площадки). Здесь под эксклюзивной блокировкой выполняется финальная
// проверка конфликтов, назначаются ID, код подтверждения и метка времени,
// запись сбрасывается на диск и попадает в журнал операций.
func (s *Store) Create(ctx context.Context, draft *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conflicts := domain.CheckConflict(s.snapshotLocked(), draft.VenueID, draft.Date, draft.TimeSlots)
	if len(conflicts) > 0 {
		s.logger.Warn("Store: create rejected, %d conflicting slots for venue=%s date=%s",
			len(conflicts), draft.VenueID, draft.Date.Format(domain.DateFormat))
		return nil, &ConflictError{Slots: conflicts}
	}

	code, err := s.newCode()
	if err != nil {
		return nil, fmt.Errorf("%w: generate confirmation code: %v", ErrStorage, err)
	}

	booking := draft.Clone()
	booking.ID = s.newID()
	booking.ConfirmationCode = code
	booking.Status = domain.StatusConfirmed
	booking.CreatedAt = s.timeProvider.Now().UTC()
	sort.Strings(booking.TimeSlots)

	// Write-through: сначала диск, потом память
	if err := s.persister.Persist(ctx, booking); err != nil {
		s.logger.Error("Store: failed to persist booking id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: persist booking: %v", ErrStorage, err)
	}

	s.bookings[booking.ID] = booking
	s.appendAudit(ctx, createAuditEntry(booking, s.timeProvider.Now().UTC()))

	s.logger.Info("Store: created booking id=%s venue=%s date=%s slots=%d",
		booking.ID, booking.VenueID, booking.Date.Format(domain.DateFormat), len(booking.TimeSlots))
	return booking.Clone(), nil
}

// Cancel переводит бронирование в статус cancelled
//
// Переход односторонний и выполняется атомарно: обновлённая запись сначала
// сбрасывается на диск, затем одним присваиванием заменяет старую в памяти.
// Слоты отменённого бронирования освобождаются для повторного использования.
// Авторизация актора выполняется вызывающей стороной
func (s *Store) Cancel(ctx context.Context, bookingID string, by domain.CancelActor, reason *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[bookingID]
	if !ok {
		return ErrBookingNotFound
	}

	if !booking.CanBeCancelled() {
		return ErrAlreadyCancelled
	}

	now := s.timeProvider.Now().UTC()

	updated := booking.Clone()
	updated.Status = domain.StatusCancelled
	updated.CancelledAt = &now
	updated.CancelledBy = &by
	updated.CancelReason = reason

	if err := s.persister.Persist(ctx, updated); err != nil {
		s.logger.Error("Store: failed to persist cancellation id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: persist cancellation: %v", ErrStorage, err)
	}

	s.bookings[bookingID] = updated
	s.appendAudit(ctx, cancelAuditEntry(updated, now))

	s.logger.Info("Store: cancelled booking id=%s by=%s", bookingID, by)
	return nil
}

// GetByID возвращает копию бронирования по идентификатору
func (s *Store) GetByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[bookingID]
	if !ok {
		return nil, ErrBookingNotFound
	}

	return booking.Clone(), nil
}

// List возвращает бронирования, удовлетворяющие фильтру
// Результат отсортирован по времени создания по убыванию и не мутирует хранилище
func (s *Store) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, booking := range s.bookings {
		if filter.Matches(booking) {
			result = append(result, booking.Clone())
		}
	}

	sortByCreatedAtDesc(result)
	return result, nil
}

// Export возвращает бронирования для выгрузки, опционально по одной площадке
// Сортировка по времени создания по убыванию
func (s *Store) Export(ctx context.Context, venueID *string) ([]*domain.Booking, error) {
	return s.List(ctx, domain.BookingsFilter{VenueID: venueID})
}

// OccupiedSlots возвращает слоты, занятые подтверждёнными бронированиями
// на указанную площадку и дату
func (s *Store) OccupiedSlots(ctx context.Context, venueID string, date time.Time) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.OccupiedSlots(s.snapshotLocked(), venueID, date)
}

// AuditLog возвращает полный дамп журнала операций
func (s *Store) AuditLog(ctx context.Context) ([]*domain.AuditEntry, error) {
	entries, err := s.audit.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load audit log: %v", ErrStorage, err)
	}
	return entries, nil
}

// snapshotLocked собирает срез записей для чистых функций над коллекцией
// Вызывается только под блокировкой
func (s *Store) snapshotLocked() []*domain.Booking {
	snapshot := make([]*domain.Booking, 0, len(s.bookings))
	for _, booking := range s.bookings {
		snapshot = append(snapshot, booking)
	}
	return snapshot
}

// appendAudit добавляет запись в журнал операций
// Отказ журнала не откатывает уже зафиксированное бронирование: журнал
// трассировочный, бронирование - авторитетное состояние
func (s *Store) appendAudit(ctx context.Context, entry *domain.AuditEntry) {
	if err := s.audit.Append(ctx, entry); err != nil {
		s.logger.Error("Store: failed to append audit entry op=%s: %v", entry.Operation, err)
	}
}

// sortByCreatedAtDesc сортирует по времени создания по убыванию
// При равных метках времени - по ID, чтобы порядок был детерминированным
func sortByCreatedAtDesc(bookings []*domain.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].CreatedAt.Equal(bookings[j].CreatedAt) {
			return bookings[i].ID > bookings[j].ID
		}
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
}
