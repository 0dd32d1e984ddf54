package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"birthdayreminder/pkg/claims"
	"birthdayreminder/pkg/session"
	"birthdayreminder/pkg/user"

	"github.com/gorilla/mux"
)

// Route templates reachable without a session.
var noSessURLs = map[string]string{
	"/api/login":  http.MethodPost,
	"/api/logout": http.MethodPost,
	"/api/user":   http.MethodGet,
}

func CheckSession(svc user.ServiceInterface, cookie session.CookieOptions, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := mux.CurrentRoute(r)
			if route == nil {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			template, err := route.GetPathTemplate()
			if err != nil {
				writeJSONError(w, http.StatusNotFound, "Not found")
				return
			}

			if method, ok := noSessURLs[template]; ok && method == r.Method {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := svc.Authenticate(session.TokenFromRequest(r))
			if errors.Is(err, user.ErrUnauthenticated) {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if err != nil {
				logger.Error("authenticate", "error", err)
				writeJSONError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			session.SetCookie(w, sess.Token, sess.ExpiresAt, cookie)
			next.ServeHTTP(w, r.WithContext(claims.WithSession(r.Context(), sess)))
		})
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
