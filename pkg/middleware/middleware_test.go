package middleware_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"birthdayreminder/pkg/claims"
	"birthdayreminder/pkg/middleware"
	"birthdayreminder/pkg/session"
	"birthdayreminder/pkg/user"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) Login(username, password string) (*session.Session, error) {
	args := m.Called(username, password)
	if s := args.Get(0); s != nil {
		return s.(*session.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUsers) Authenticate(token string) (*session.Session, error) {
	args := m.Called(token)
	if s := args.Get(0); s != nil {
		return s.(*session.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUsers) Logout(token string) error {
	return m.Called(token).Error(0)
}

func newRouter(users user.ServiceInterface) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.CheckSession(users, session.CookieOptions{}, slog.Default()))

	ok := func(w http.ResponseWriter, r *http.Request) {
		if sess, found := claims.FromContext(r.Context()); found {
			w.Header().Set("X-User", sess.Username)
		}
		w.WriteHeader(http.StatusOK)
	}
	api.HandleFunc("/login", ok).Methods("POST")
	api.HandleFunc("/logout", ok).Methods("POST")
	api.HandleFunc("/user", ok).Methods("GET")
	api.HandleFunc("/birthdays", ok).Methods("GET", "POST")
	api.HandleFunc("/birthdays/{id:[0-9]+}", ok).Methods("GET", "PUT", "DELETE")
	return r
}

func TestCheckSession_OpenRoutes(t *testing.T) {
	m := new(mockUsers)
	r := newRouter(m)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/login"},
		{http.MethodPost, "/api/logout"},
		{http.MethodGet, "/api/user"},
	} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusOK, rr.Code, "%s %s", tc.method, tc.path)
	}

	m.AssertNotCalled(t, "Authenticate", mock.Anything)
}

func TestCheckSession_Protected(t *testing.T) {
	expires := time.Now().Add(24 * time.Hour).Truncate(time.Second)

	m := new(mockUsers)
	m.On("Authenticate", "").Return(nil, user.ErrUnauthenticated)
	m.On("Authenticate", "stale").Return(nil, user.ErrUnauthenticated)
	m.On("Authenticate", "good").Return(&session.Session{Token: "good", Username: "admin", ExpiresAt: expires}, nil)
	m.On("Authenticate", "broken").Return(nil, errors.New("store down"))
	r := newRouter(m)

	tests := []struct {
		name   string
		method string
		path   string
		cookie string
		status int
	}{
		{"list without cookie", http.MethodGet, "/api/birthdays", "", http.StatusUnauthorized},
		{"create without cookie", http.MethodPost, "/api/birthdays", "", http.StatusUnauthorized},
		{"delete with stale cookie", http.MethodDelete, "/api/birthdays/1", "stale", http.StatusUnauthorized},
		{"list with session", http.MethodGet, "/api/birthdays", "good", http.StatusOK},
		{"update with session", http.MethodPut, "/api/birthdays/7", "good", http.StatusOK},
		{"store failure", http.MethodGet, "/api/birthdays", "broken", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: session.CookieName, Value: tt.cookie})
			}
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			switch tt.status {
			case http.StatusUnauthorized:
				assert.JSONEq(t, `{"message":"Unauthorized"}`, rr.Body.String())
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			case http.StatusOK:
				assert.Equal(t, "admin", rr.Header().Get("X-User"))
				var refreshed *http.Cookie
				for _, c := range rr.Result().Cookies() {
					if c.Name == session.CookieName {
						refreshed = c
					}
				}
				require.NotNil(t, refreshed)
				assert.Equal(t, "good", refreshed.Value)
				assert.True(t, refreshed.Expires.Equal(expires))
			}
		})
	}
}

func TestCheckSession_OpenRouteWrongMethodIsProtected(t *testing.T) {
	m := new(mockUsers)
	m.On("Authenticate", "").Return(nil, user.ErrUnauthenticated)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.CheckSession(m, session.CookieOptions{}, slog.Default()))
	api.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {}).Methods("GET", "DELETE")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/user", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	h := middleware.Panic(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/birthdays", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"message":"internal server error"}`, rr.Body.String())
	assert.Contains(t, buf.String(), "panic recover")
	assert.Contains(t, buf.String(), "boom")
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	h := middleware.AccessLog(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("generates request id", func(t *testing.T) {
		buf.Reset()
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/birthdays", nil))

		assert.Len(t, rr.Header().Get(middleware.RequestIDHeader), 36)
		assert.Contains(t, buf.String(), "status=418")
		assert.Contains(t, buf.String(), "path=/api/birthdays")
	})

	t.Run("keeps incoming request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc")
		rr := httptest.NewRecorder()

		h.ServeHTTP(rr, req)

		assert.Equal(t, "abc", rr.Header().Get(middleware.RequestIDHeader))
		assert.Contains(t, buf.String(), "id=abc")
	})
}
