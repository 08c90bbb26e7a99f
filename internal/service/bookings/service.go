package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-VenueBookingService/internal/store"
)

// Service сервис работы с бронированиями: чтение и авторизованная отмена
type Service struct {
	store  ReservationStore
	logger Logger
}

func NewService(store ReservationStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// GetByID возвращает бронирование по идентификатору
func (s *Service) GetByID(ctx context.Context, bookingID string) (*models.BookingResponse, error) {
	if bookingID == "" {
		return nil, fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	booking, err := s.store.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, store.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: failed to fetch booking %s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование от имени указанного актора
//
// Администратор отменяет любое подтвержденное бронирование без проверок.
// Пользователь обязан подтвердить личность контактными данными бронирования.
// Переход статуса односторонний: отмененное бронирование отменить повторно нельзя
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) error {
	if bookingID == "" {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}
	if !domain.IsValidCancelActor(req.Actor) {
		return fmt.Errorf("%w: unknown cancel actor %q", ErrInvalidInput, req.Actor)
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxCancelReasonLen {
		return fmt.Errorf("%w: cancel reason exceeds %d characters", ErrInvalidInput, domain.MaxCancelReasonLen)
	}

	// 1. Получаем бронирование
	booking, err := s.store.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, store.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: failed to fetch booking %s: %v", bookingID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 2. Проверяем допустимость перехода статуса
	if !booking.CanBeCancelled() {
		return ErrAlreadyCancelled
	}

	// 3. Авторизация: admin без проверок, user по контактным данным
	if req.Actor == domain.CancelledByUser {
		if err := verifyBookerIdentity(booking, req.ClaimedEmail, req.ClaimedPhone); err != nil {
			s.logger.Warn("Cancel: identity check failed for booking %s", bookingID)
			return err
		}
	}

	// 4. Фиксируем отмену в хранилище
	if err := s.store.Cancel(ctx, bookingID, req.Actor, req.Reason); err != nil {
		switch {
		case errors.Is(err, store.ErrBookingNotFound):
			return ErrBookingNotFound
		case errors.Is(err, store.ErrAlreadyCancelled):
			return ErrAlreadyCancelled
		default:
			s.logger.Error("Cancel: failed to cancel booking %s: %v", bookingID, err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Cancel: booking %s cancelled by %s", bookingID, req.Actor)
	return nil
}
