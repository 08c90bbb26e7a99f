package create_booking

import "errors"

var (
	// ErrValidation возвращается при некорректных или недопустимых входных данных
	// Ошибка всегда устранима исправлением заявки, автоповтор не имеет смысла
	ErrValidation = errors.New("create_booking: validation failed")

	// ErrVenueNotFound возвращается, когда площадка отсутствует в справочнике
	ErrVenueNotFound = errors.New("create_booking: venue not found")

	// ErrAdminOnlyVenue возвращается при попытке забронировать площадку
	// с повышенным доступом без админских прав
	ErrAdminOnlyVenue = errors.New("create_booking: venue requires admin access")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
