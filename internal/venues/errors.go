package venues

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка отсутствует в справочнике
	ErrVenueNotFound = errors.New("venues: venue not found")

	// ErrInvalidVenueConfig возвращается при некорректной конфигурации площадки
	ErrInvalidVenueConfig = errors.New("venues: invalid venue config")
)
