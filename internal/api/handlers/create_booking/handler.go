package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/store"
	createBooking "github.com/m04kA/SMC-VenueBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgValidationFailed   = "заявка не прошла валидацию"
	msgVenueNotFound      = "площадка не найдена"
	msgAdminOnlyVenue     = "площадка доступна только администратору"
	msgSlotConflict       = "выбранные слоты уже заняты"
)

// Handler обрабатывает создание бронирования
// Регистрируется дважды: на публичном маршруте с adminAccess=false
// и на админском с adminAccess=true, по аналогии с отменой
type Handler struct {
	useCase     CreateBookingUseCase
	logger      Logger
	adminAccess bool
}

func NewHandler(useCase CreateBookingUseCase, logger Logger, adminAccess bool) *Handler {
	return &Handler{
		useCase:     useCase,
		logger:      logger,
		adminAccess: adminAccess,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем body
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем в модель usecase
	ucReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	ucReq.AdminAccess = h.adminAccess

	// Создаем бронирование
	resp, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		var conflictErr *store.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /bookings - Slot conflict: venue=%s date=%s slots=%v",
				req.VenueID, req.Date, conflictErr.Slots)
			handlers.RespondConflict(w, msgSlotConflict, conflictErr.Slots)

		case errors.Is(err, createBooking.ErrValidation):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, createBooking.ErrVenueNotFound):
			h.logger.Warn("POST /bookings - Venue not found: venue=%s", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrAdminOnlyVenue):
			h.logger.Warn("POST /bookings - Admin-only venue without admin access: venue=%s", req.VenueID)
			handlers.RespondForbidden(w, msgAdminOnlyVenue)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%s venue=%s date=%s slots=%d",
		resp.ID, resp.VenueID, req.Date, len(resp.TimeSlots))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
