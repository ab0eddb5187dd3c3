package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/jtmanningm/ezbiz-booking/internal/api/handlers"
)

type contextKey string

// UserIDKey carries the authenticated user ID through the request context.
const UserIDKey contextKey = "userID"

const userIDHeader = "X-User-ID"

// Auth requires a numeric X-User-ID header on every request. The gateway in
// front of the service fills it in after authenticating the session.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing X-User-ID header")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			handlers.RespondError(w, http.StatusUnauthorized, "invalid X-User-ID header")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the authenticated user ID, if any.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(UserIDKey).(int64)
	return id, ok
}
