package reports

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	bookingmodels "github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/reports/models"
)

// Service сервис отчетов: фильтрованные выборки, агрегаты, экспорт, аудит
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

// ListBookings возвращает бронирования по фильтру с агрегатами
// Результат отсортирован по времени создания, новые первыми
func (s *Service) ListBookings(ctx context.Context, req *models.ListBookingsRequest) (*models.ListBookingsResponse, error) {
	filter, err := buildFilter(req)
	if err != nil {
		return nil, err
	}

	bookings, err := s.store.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListBookings: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &models.ListBookingsResponse{
		Bookings: bookingmodels.FromDomainBookingList(bookings),
		Stats:    computeStats(bookings),
	}, nil
}

// ExportBookings возвращает полную выгрузку бронирований, опционально по площадке
func (s *Service) ExportBookings(ctx context.Context, venueID *string) ([]*bookingmodels.BookingResponse, error) {
	bookings, err := s.store.Export(ctx, venueID)
	if err != nil {
		s.logger.Error("ExportBookings: failed to export bookings: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return bookingmodels.FromDomainBookingList(bookings), nil
}

// AuditLog возвращает журнал операций в хронологическом порядке
func (s *Service) AuditLog(ctx context.Context) ([]*models.AuditEntryResponse, error) {
	entries, err := s.store.AuditLog(ctx)
	if err != nil {
		s.logger.Error("AuditLog: failed to load audit log: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	result := make([]*models.AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, models.FromDomainAuditEntry(e))
	}
	return result, nil
}

func buildFilter(req *models.ListBookingsRequest) (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		VenueID:   req.VenueID,
		Search:    req.Search,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	if req.Status != nil {
		status := domain.BookingStatus(*req.Status)
		if status != domain.StatusConfirmed && status != domain.StatusCancelled {
			return domain.BookingsFilter{}, fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, *req.Status)
		}
		filter.Status = &status
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return domain.BookingsFilter{}, fmt.Errorf("%w: endDate is before startDate", ErrInvalidFilter)
	}

	return filter, nil
}

func computeStats(bookings []*domain.Booking) models.BookingsStats {
	stats := models.BookingsStats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case domain.StatusConfirmed:
			stats.Confirmed++
			stats.TotalSlots += len(b.TimeSlots)
		case domain.StatusCancelled:
			stats.Cancelled++
		}
	}
	return stats
}
