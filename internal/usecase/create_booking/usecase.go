package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/venues"
)

// UseCase use case для создания бронирования
type UseCase struct {
	store    ReservationStore
	registry VenueRegistry
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store ReservationStore, registry VenueRegistry, logger Logger) *UseCase {
	return &UseCase{
		store:    store,
		registry: registry,
		logger:   logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Валидация выполняется до обращения к хранилищу: заявка с числом слотов
// выше лимита площадки отклоняется раньше любой проверки конфликтов.
// Конфликт слотов возвращается как store.ConflictError с перечнем занятых
// слотов и пробрасывается вызывающей стороне без изменений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: venue=%s, date=%s, slots=%d, company=%s",
		req.VenueID, req.Date.Format(domain.DateFormat), len(req.TimeSlots), req.Company)

	// 1. Валидация полей заявки
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем конфигурацию площадки
	venue, err := uc.registry.Get(req.VenueID)
	if err != nil {
		if errors.Is(err, venues.ErrVenueNotFound) {
			uc.logger.Warn("CreateBooking: venue %q not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CreateBooking: failed to get venue %q: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 3. Площадки с повышенным доступом бронируются только через админский маршрут
	if venue.AdminOnly && !req.AdminAccess {
		uc.logger.Warn("CreateBooking: admin-only venue %q requested without admin access", venue.ID)
		return nil, ErrAdminOnlyVenue
	}

	// 4. Проверяем заявку против правил площадки (категории, лимит слотов)
	if err := validateVenueRules(req, venue); err != nil {
		uc.logger.Warn("CreateBooking: venue rules check failed: %v", err)
		return nil, err
	}

	// 5. Фиксируем бронирование
	// Проверка конфликтов и коммит выполняются хранилищем атомарно
	draft := &domain.Booking{
		VenueID:   req.VenueID,
		Date:      req.Date,
		TimeSlots: req.TimeSlots,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Purpose:   req.Purpose,
		Notes:     req.Notes,
	}

	created, err := uc.store.Create(ctx, draft)
	if err != nil {
		// ConflictError и StorageError уходят наверх как есть
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s code=%s",
		created.ID, created.ConfirmationCode)

	return fromDomainBooking(created), nil
}
