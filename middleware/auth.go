package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/tmondal/trvl-backend/controllers"
	"github.com/tmondal/trvl-backend/utils"
)

// Identity attaches the requesting user's id to the context when the request
// carries a valid session, and passes the request through untouched otherwise.
// Anonymous requests are a normal state, not a fault.
func Identity(logger *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessionToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := utils.ValidateJWT(token)
			if err != nil {
				logger.WithError(err).Debugf("rejected session token on %s %s", r.Method, r.URL.Path)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), controllers.UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser guards handlers that only make sense for a logged-in user.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Value(controllers.UserIDKey).(string); !ok {
			http.Error(w, "Please login first", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// sessionToken prefers the session cookie and falls back to a bearer header
// for non-browser clients.
func sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(utils.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := r.Header.Get("Authorization")
	parts := strings.Split(header, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
