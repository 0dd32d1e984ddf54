package routing

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"birthdayreminder/pkg/birthday"
	"birthdayreminder/pkg/handlers"
	"birthdayreminder/pkg/middleware"
	"birthdayreminder/pkg/session"
	"birthdayreminder/pkg/user"
)

type Options struct {
	Birthdays birthday.ServiceBirthday
	Users     user.ServiceInterface
	Cookie    session.CookieOptions
	StaticDir string
	Logger    *slog.Logger
}

// NewRouter wires the API under /api and the client bundle everywhere else.
func NewRouter(opts Options) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Panic(opts.Logger))
	api.Use(middleware.AccessLog(opts.Logger))
	api.Use(middleware.CheckSession(opts.Users, opts.Cookie, opts.Logger))

	InitRoutes(api, opts)
	ServeClient(r, opts.StaticDir, opts.Logger)

	return r
}

func InitRoutes(api *mux.Router, opts Options) {
	userHandler := handlers.NewUserHandler(opts.Users, opts.Cookie, opts.Logger)
	birthdayHandler := handlers.NewBirthdayHandler(opts.Birthdays, opts.Logger)

	/* -+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+ */

	birthdaysRouter := api.PathPrefix("/birthdays").Subrouter()

	/* auth routers */
	api.HandleFunc("/login", userHandler.Login).Methods("POST").Name("login")
	api.HandleFunc("/logout", userHandler.Logout).Methods("POST").Name("logout")
	api.HandleFunc("/user", userHandler.Me).Methods("GET").Name("me")

	/* birthdays routers */
	birthdaysRouter.HandleFunc("", birthdayHandler.List).Methods("GET")
	birthdaysRouter.HandleFunc("", birthdayHandler.Create).Methods("POST")
	birthdaysRouter.HandleFunc("/upcoming", birthdayHandler.Upcoming).Methods("GET")
	birthdaysRouter.HandleFunc("/{id:[0-9]+}", birthdayHandler.Get).Methods("GET")
	birthdaysRouter.HandleFunc("/{id:[0-9]+}", birthdayHandler.Update).Methods("PUT")
	birthdaysRouter.HandleFunc("/{id:[0-9]+}", birthdayHandler.Delete).Methods("DELETE")
}

// ServeClient serves files from staticDir and falls back to index.html so the
// client can route on its own. Unknown /api paths get a JSON 404.
func ServeClient(r *mux.Router, staticDir string, logger *slog.Logger) {
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			if _, err := w.Write([]byte(`{"message":"Not found"}`)); err != nil {
				logger.Error("failed to write fallback JSON", slog.String("path", r.URL.Path), slog.Any("error", err))
			}
			return
		}

		name := filepath.Join(staticDir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			http.ServeFile(w, r, name)
			return
		}
		http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
	})
}

type ServerTimeouts struct {
	Read  time.Duration
	Write time.Duration
	Idle  time.Duration
}

func NewServer(addr string, handler http.Handler, t ServerTimeouts) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       t.Read,
		ReadHeaderTimeout: t.Read,
		WriteTimeout:      t.Write,
		IdleTimeout:       t.Idle,
	}
}
