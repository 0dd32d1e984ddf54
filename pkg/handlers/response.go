package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"

	"birthdayreminder/pkg/birthday"
)

const (
	msgInternal    = "internal server error"
	msgNotFound    = "Not found"
	msgBadJSON     = "invalid JSON payload"
	msgContentType = "invalid Content-Type"
)

type errorBody struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, data any) bool {
	resp, err := json.Marshal(data)
	if err != nil {
		logger.Error("failed to serialize JSON response", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return false
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(resp); err != nil {
		logger.Error("failed to write response to client", "error", err)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeErrorBody(w, status, errorBody{Message: msg})
}

func writeValidationError(w http.ResponseWriter, verr *birthday.ValidationError) {
	writeErrorBody(w, http.StatusBadRequest, errorBody{Message: verr.Message, Field: verr.Field})
}

func writeErrorBody(w http.ResponseWriter, status int, body errorBody) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		return
	}
}

// DecodeJSONBody reads a JSON request body into req, answering 400 itself when
// the body cannot be used. A field with the wrong JSON type is reported by name.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, req any) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		writeError(w, http.StatusBadRequest, msgContentType)
		return false
	}

	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			writeValidationError(w, &birthday.ValidationError{
				Field:   typeErr.Field,
				Message: fmt.Sprintf("%s must be of type %s", typeErr.Field, jsonType(typeErr)),
			})
			return false
		}
		writeError(w, http.StatusBadRequest, msgBadJSON)
		return false
	}

	return true
}

func jsonType(err *json.UnmarshalTypeError) string {
	switch err.Type.String() {
	case "bool":
		return "boolean"
	case "string", "*string":
		return "string"
	default:
		return err.Type.String()
	}
}
