package get_available_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	getAvailableSlots "github.com/m04kA/SMC-VenueBookingService/internal/usecase/get_available_slots"
)

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error
}

func (u *fakeUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	if u.err != nil {
		return nil, u.err
	}
	return u.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func doGet(t *testing.T, uc *fakeUseCase, url string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, noopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/venues/{venueId}/available-slots", handler.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestGetAvailableSlotsHandler(t *testing.T) {
	t.Run("missing date maps to 400", func(t *testing.T) {
		rec := doGet(t, &fakeUseCase{}, "/api/v1/venues/studio-large/available-slots")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), msgMissingDate)
	})

	t.Run("malformed date maps to 400", func(t *testing.T) {
		rec := doGet(t, &fakeUseCase{}, "/api/v1/venues/studio-large/available-slots?date=14.03.2026")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), msgInvalidDate)
	})

	t.Run("usecase input error gets a generic message", func(t *testing.T) {
		uc := &fakeUseCase{err: getAvailableSlots.ErrInvalidInput}
		rec := doGet(t, uc, "/api/v1/venues/studio-large/available-slots?date=2026-03-14")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		// Причина не обязательно связана с датой, сообщение не должно
		// утверждать, что дата отсутствует
		assert.Contains(t, rec.Body.String(), msgInvalidRequest)
		assert.NotContains(t, rec.Body.String(), msgMissingDate)
	})

	t.Run("unknown venue maps to 404", func(t *testing.T) {
		uc := &fakeUseCase{err: getAvailableSlots.ErrVenueNotFound}
		rec := doGet(t, uc, "/api/v1/venues/missing/available-slots?date=2026-03-14")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
