package bookings

import (
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// verifyBookerIdentity проверяет заявленную личность бронирующего
//
// Достаточно точного совпадения любого одного из двух полей: email ИЛИ
// телефона. Это проверка знания контактных данных, а не криптография:
// она отсекает случайные чужие отмены, но не злоумышленника, знающего
// контакты бронирующего
func verifyBookerIdentity(booking *domain.Booking, claimedEmail, claimedPhone string) error {
	if claimedEmail == "" && claimedPhone == "" {
		return fmt.Errorf("%w: email or phone is required", ErrIdentityMismatch)
	}

	emailMatch := claimedEmail != "" && claimedEmail == booking.Email
	phoneMatch := claimedPhone != "" && claimedPhone == booking.Phone

	if !emailMatch && !phoneMatch {
		return ErrIdentityMismatch
	}

	return nil
}
