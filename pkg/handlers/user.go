package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"birthdayreminder/pkg/session"
	"birthdayreminder/pkg/user"
)

type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Handler struct {
	Service user.ServiceInterface
	Logger  *slog.Logger
	Cookie  session.CookieOptions
}

func NewUserHandler(service user.ServiceInterface, cookie session.CookieOptions, logger *slog.Logger) *Handler {
	return &Handler{
		Service: service,
		Logger:  logger,
		Cookie:  cookie,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	sess, err := h.Service.Login(req.Username, req.Password)
	if errors.Is(err, user.ErrInvalidCredentials) {
		h.Logger.Warn("login", "error", "invalid credentials", "username", req.Username)
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		h.Logger.Error("login", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	session.SetCookie(w, sess.Token, sess.ExpiresAt, h.Cookie)
	if ok := writeJSON(w, h.Logger, http.StatusOK, map[string]any{"success": true}); ok {
		h.Logger.Info("login", "user", sess.Username)
	}
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Logout(session.TokenFromRequest(r)); err != nil {
		h.Logger.Error("logout", "error", err)
	}
	session.ClearCookie(w, h.Cookie)
	w.WriteHeader(http.StatusOK)
}

// Me reports the logged-in identity, or JSON null without a live session.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Service.Authenticate(session.TokenFromRequest(r))
	if err != nil {
		if !errors.Is(err, user.ErrUnauthenticated) {
			h.Logger.Error("me", "error", err)
		}
		writeJSON(w, h.Logger, http.StatusOK, nil)
		return
	}

	writeJSON(w, h.Logger, http.StatusOK, user.User{Username: sess.Username, Role: sess.Role})
}
