package create_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/SMC-VenueBookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	lastReq *createBooking.Request
	resp    *createBooking.Response
	err     error
}

func (u *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	u.lastReq = req
	if u.err != nil {
		return nil, u.err
	}
	return u.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

const validBody = `{
	"venueId": "studio-large",
	"date": "2026-03-14",
	"timeSlots": ["09:00-09:30"],
	"name": "Anna Petrova",
	"email": "anna@example.com",
	"phone": "+7 900 123-45-67",
	"company": "Fujiwara Records",
	"purpose": "Rehearsal"
}`

func doCreate(t *testing.T, uc *fakeUseCase, adminAccess bool, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, noopLogger{}, adminAccess)

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings", handler.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateBookingHandler(t *testing.T) {
	t.Run("public route does not grant admin access", func(t *testing.T) {
		uc := &fakeUseCase{err: createBooking.ErrAdminOnlyVenue}
		rec := doCreate(t, uc, false, validBody)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		require.NotNil(t, uc.lastReq)
		assert.False(t, uc.lastReq.AdminAccess)
	})

	t.Run("admin route grants admin access", func(t *testing.T) {
		uc := &fakeUseCase{resp: &createBooking.Response{ID: "booking-001"}}
		rec := doCreate(t, uc, true, validBody)

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, uc.lastReq)
		assert.True(t, uc.lastReq.AdminAccess)
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		uc := &fakeUseCase{err: createBooking.ErrValidation}
		rec := doCreate(t, uc, false, validBody)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("body cannot force admin access", func(t *testing.T) {
		// Неизвестные поля тела отклоняются декодером
		uc := &fakeUseCase{}
		body := strings.Replace(validBody, `"venueId"`, `"adminAccess": true, "venueId"`, 1)
		rec := doCreate(t, uc, false, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, uc.lastReq)
	})
}
