package create_booking

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

var (
	// emailRegexp стандартный шаблон local@domain.tld
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// phoneRegexp цифры, пробелы, дефисы, скобки и плюс, минимум 8 символов
	phoneRegexp = regexp.MustCompile(`^[0-9\-\s\+\(\)]{8,}$`)
)

// validateRequest валидирует поля заявки, не требующие справочника площадок
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	if !emailRegexp.MatchString(req.Email) {
		return fmt.Errorf("%w: invalid email format", ErrValidation)
	}

	if !phoneRegexp.MatchString(req.Phone) {
		return fmt.Errorf("%w: invalid phone format", ErrValidation)
	}

	if req.Company == "" {
		return fmt.Errorf("%w: company is required", ErrValidation)
	}

	if req.Purpose == "" {
		return fmt.Errorf("%w: purpose is required", ErrValidation)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrValidation, domain.MaxNotesLength)
	}

	return validateSlots(req.TimeSlots)
}

// validateSlots проверяет набор слотов: непустой, без дубликатов,
// каждый идентификатор входит в суточный каталог
// Верхняя граница по maxSlots площадки проверяется отдельно
func validateSlots(slots []string) error {
	if len(slots) == 0 {
		return fmt.Errorf("%w: at least one time slot is required", ErrValidation)
	}

	seen := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		if !domain.IsValidSlot(slot) {
			return fmt.Errorf("%w: unknown time slot %q", ErrValidation, slot)
		}
		if _, dup := seen[slot]; dup {
			return fmt.Errorf("%w: duplicate time slot %q", ErrValidation, slot)
		}
		seen[slot] = struct{}{}
	}

	return nil
}

// validateVenueRules проверяет заявку против правил площадки
func validateVenueRules(req *Request, venue *domain.VenueConfig) error {
	if !venue.AllowsCompany(req.Company) {
		return fmt.Errorf("%w: company %q is not allowed for venue %q", ErrValidation, req.Company, venue.ID)
	}

	if !venue.AllowsPurpose(req.Purpose) {
		return fmt.Errorf("%w: purpose %q is not allowed for venue %q", ErrValidation, req.Purpose, venue.ID)
	}

	if len(req.TimeSlots) > venue.MaxSlots {
		return fmt.Errorf("%w: at most %d slots per booking for venue %q", ErrValidation, venue.MaxSlots, venue.ID)
	}

	return nil
}
