package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"birthdayreminder/pkg/birthday"
	"birthdayreminder/pkg/claims"

	"github.com/gorilla/mux"
)

const (
	muxVarID         = "id"
	defaultDaysAhead = 7
	maxDaysAhead     = 366
)

type BirthdayHandler struct {
	Service birthday.ServiceBirthday
	Logger  *slog.Logger
	Now     func() time.Time
}

func NewBirthdayHandler(service birthday.ServiceBirthday, logger *slog.Logger) *BirthdayHandler {
	return &BirthdayHandler{
		Service: service,
		Logger:  logger,
		Now:     time.Now,
	}
}

// actor names the logged-in user for audit logs.
func actor(r *http.Request) string {
	if sess, ok := claims.FromContext(r.Context()); ok {
		return sess.Username
	}
	return ""
}

func (h *BirthdayHandler) idFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[muxVarID])
	if err != nil || id <= 0 {
		writeError(w, http.StatusNotFound, msgNotFound)
		return 0, false
	}
	return id, true
}

// List supports ?q= (name filter) and ?sort=monthday.
func (h *BirthdayHandler) List(w http.ResponseWriter, r *http.Request) {
	list := h.Service.List(r.Context())

	query := r.URL.Query()
	list = birthday.FilterByName(list, query.Get("q"))
	if query.Get("sort") == "monthday" {
		birthday.SortByMonthDay(list)
	}

	writeJSON(w, h.Logger, http.StatusOK, list)
}

func (h *BirthdayHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idFromPath(w, r)
	if !ok {
		return
	}

	b := h.Service.Get(r.Context(), id)
	if b == nil {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}

	writeJSON(w, h.Logger, http.StatusOK, b)
}

func (h *BirthdayHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in birthday.Input
	if ok := DecodeJSONBody(w, r, &in); !ok {
		return
	}
	if !h.validate(w, in.Validate()) {
		return
	}

	b, err := h.Service.Create(r.Context(), in)
	if err != nil {
		h.Logger.Error("create birthday", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	if ok := writeJSON(w, h.Logger, http.StatusCreated, b); ok {
		h.Logger.Info("birthday created", "id", b.ID, "by", actor(r))
	}
}

func (h *BirthdayHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idFromPath(w, r)
	if !ok {
		return
	}

	var patch birthday.Patch
	if ok := DecodeJSONBody(w, r, &patch); !ok {
		return
	}
	if !h.validate(w, patch.Validate()) {
		return
	}

	b, err := h.Service.Update(r.Context(), id, patch)
	if errors.Is(err, birthday.ErrNotFound) {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}
	if err != nil {
		h.Logger.Error("update birthday", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	if ok := writeJSON(w, h.Logger, http.StatusOK, b); ok {
		h.Logger.Info("birthday updated", "id", id, "by", actor(r))
	}
}

func (h *BirthdayHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idFromPath(w, r)
	if !ok {
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		h.Logger.Error("delete birthday", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	h.Logger.Info("birthday deleted", "id", id, "by", actor(r))
	w.WriteHeader(http.StatusNoContent)
}

// Upcoming lists birthdays due within ?days= days (default 7), nearest first.
func (h *BirthdayHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	days := defaultDaysAhead
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > maxDaysAhead {
			writeValidationError(w, &birthday.ValidationError{
				Field:   "days",
				Message: "days must be a number between 0 and 366",
			})
			return
		}
		days = n
	}

	writeJSON(w, h.Logger, http.StatusOK, h.Service.Upcoming(r.Context(), h.Now(), days))
}

func (h *BirthdayHandler) validate(w http.ResponseWriter, err error) bool {
	if err == nil {
		return true
	}
	var verr *birthday.ValidationError
	if errors.As(err, &verr) {
		writeValidationError(w, verr)
		return false
	}
	h.Logger.Error("validate", "error", err)
	writeError(w, http.StatusInternalServerError, msgInternal)
	return false
}
