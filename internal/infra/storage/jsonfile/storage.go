package jsonfile

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// BookingStorage файловое хранилище бронирований
//
// Все записи лежат одним JSON-массивом. Каждый Persist переписывает файл
// целиком через временный файл с fsync и атомарным rename, поэтому на диске
// никогда не видно полузаписанного состояния
type BookingStorage struct {
	mu      sync.Mutex
	path    string
	records map[string]*bookingRecord
	loaded  bool
}

// NewBookingStorage создает файловое хранилище бронирований
func NewBookingStorage(path string) *BookingStorage {
	return &BookingStorage{
		path:    path,
		records: make(map[string]*bookingRecord),
	}
}

// LoadAll читает все бронирования из файла
// Отсутствующий файл - пустое хранилище, не ошибка
func (s *BookingStorage) LoadAll(ctx context.Context) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(); err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, 0, len(s.records))
	for _, record := range s.records {
		booking, err := record.toDomainBooking()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

// Persist сохраняет бронирование (вставку или обновление) с синхронным flush
func (s *BookingStorage) Persist(ctx context.Context, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(); err != nil {
		return err
	}

	record := toBookingRecord(booking)

	previous, existed := s.records[record.ID]
	s.records[record.ID] = record

	if err := s.flushLocked(); err != nil {
		// Откатываем кэш, чтобы он не разошелся с диском
		if existed {
			s.records[record.ID] = previous
		} else {
			delete(s.records, record.ID)
		}
		return err
	}

	return nil
}

// ensureLoadedLocked лениво загружает файл в кэш при первом обращении
func (s *BookingStorage) ensureLoadedLocked() error {
	if s.loaded {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.loaded = true
			return nil
		}
		return fmt.Errorf("%w: %s: %v", ErrReadFile, s.path, err)
	}

	var records []*bookingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, s.path, err)
	}

	for _, record := range records {
		s.records[record.ID] = record
	}

	s.loaded = true
	return nil
}

// flushLocked атомарно переписывает файл хранилища
func (s *BookingStorage) flushLocked() error {
	records := make([]*bookingRecord, 0, len(s.records))
	for _, record := range s.records {
		records = append(records, record)
	}
	// Стабильный порядок записей в файле
	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt == records[j].CreatedAt {
			return records[i].ID < records[j].ID
		}
		return records[i].CreatedAt < records[j].CreatedAt
	})

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return atomicWrite(s.path, data)
}

// atomicWrite пишет данные во временный файл с fsync и переименовывает его
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: mkdir %s: %v", ErrWriteFile, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrWriteFile, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write temp file: %v", ErrWriteFile, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: sync temp file: %v", ErrWriteFile, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close temp file: %v", ErrWriteFile, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename temp file: %v", ErrWriteFile, err)
	}

	return nil
}

// AuditStorage файловый журнал операций
// Формат - JSON Lines: по одной записи на строку, только дозапись в конец
type AuditStorage struct {
	mu   sync.Mutex
	path string
}

// NewAuditStorage создает файловый журнал операций
func NewAuditStorage(path string) *AuditStorage {
	return &AuditStorage{path: path}
}

// Append дозаписывает запись в конец журнала с синхронным flush
func (s *AuditStorage) Append(ctx context.Context, entry *domain.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: mkdir: %v", ErrWriteFile, err)
	}

	data, err := json.Marshal(toAuditRecord(entry))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", ErrWriteFile, s.path, err)
	}
	defer file.Close()

	if _, err := file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("%w: append entry: %v", ErrWriteFile, err)
	}
	if err := file.Sync(); err != nil {
		return fmt.Errorf("%w: sync: %v", ErrWriteFile, err)
	}

	return nil
}

// LoadAll читает весь журнал в порядке записи
func (s *AuditStorage) LoadAll(ctx context.Context) ([]*domain.AuditEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*domain.AuditEntry{}, nil
		}
		return nil, fmt.Errorf("%w: open %s: %v", ErrReadFile, s.path, err)
	}
	defer file.Close()

	entries := make([]*domain.AuditEntry, 0)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var record auditRecord
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}

		entry, err := record.toDomainEntry()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: scan %s: %v", ErrReadFile, s.path, err)
	}

	return entries, nil
}
