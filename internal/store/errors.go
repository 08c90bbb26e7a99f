package store

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("store: booking not found")

	// ErrAlreadyCancelled возвращается при повторной отмене бронирования
	// Повторная отмена - явная ошибка, а не тихий no-op
	ErrAlreadyCancelled = errors.New("store: booking already cancelled")

	// ErrSlotConflict маркер конфликта слотов, используется с errors.Is
	ErrSlotConflict = errors.New("store: slot conflict")

	// ErrStorage возвращается при отказе долговременного хранилища
	// In-memory состояние при этом не расходится с диском: мутация откатывается
	ErrStorage = errors.New("store: storage failure")
)

// ConflictError ошибка конфликта с перечнем занятых слотов
// Слоты возвращаются вызывающей стороне, чтобы она могла их показать
type ConflictError struct {
	Slots []string
}

// Error возвращает текст ошибки
func (e *ConflictError) Error() string {
	return fmt.Sprintf("store: slots already booked: %s", strings.Join(e.Slots, ", "))
}

// Is поддерживает сравнение через errors.Is(err, ErrSlotConflict)
func (e *ConflictError) Is(target error) bool {
	return target == ErrSlotConflict
}
