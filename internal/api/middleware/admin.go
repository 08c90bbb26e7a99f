package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
)

const (
	adminTokenHeader = "X-Admin-Token"

	msgAdminTokenRequired = "требуется админский токен"
)

type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminAuth проверяет статический админский токен в заголовке запроса
// Токен общий для всех администраторов, персональной аутентификации нет
func AdminAuth(token string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(adminTokenHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				logger.Warn("%s %s - Admin token rejected", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgAdminTokenRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
