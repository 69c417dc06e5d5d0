package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-TravelBooking/internal/api/handlers"
)

// UserIDHeader заголовок с ID пользователя, проставляется API gateway
const UserIDHeader = "X-User-ID"

const msgMissingUserID = "отсутствует заголовок X-User-ID"

type contextKey string

const userIDKey contextKey = "userID"

// Auth проверяет наличие ID пользователя и кладет его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// WithUserID возвращает контекст с ID пользователя
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}
