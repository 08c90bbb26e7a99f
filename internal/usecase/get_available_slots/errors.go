package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrVenueNotFound возвращается, когда площадка отсутствует в справочнике
	ErrVenueNotFound = errors.New("get_available_slots: venue not found")
)
