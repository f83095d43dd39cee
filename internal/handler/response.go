package handler

// RESPONSE HELPERS:
// Every endpoint answers with the same envelope (model.Response), whether it
// succeeded or not:
//
//	{"success":false,"error":"User not found","statusCode":404,"timestamp":"..."}
//
// The envelope's statusCode is always the HTTP status we send, so a client
// can read either one.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/go-examples/internal/apperror"
	"github.com/sakif/go-examples/internal/model"
)

// writeJSON sends a JSON response with the given status code.
//
// HEADER ORDER MATTERS:
// Headers and status must be set BEFORE the body is written. Once Encode
// calls w.Write, later header changes are silently ignored.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent, so all we can do is log it.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeResponse sends an envelope using its own status code.
func writeResponse[T any](w http.ResponseWriter, res model.Response[T]) {
	writeJSON(w, res.StatusCode, res)
}

// writeError maps a domain error to an HTTP status and sends it as a failed
// envelope.
//
// errors.Is walks the whole Unwrap chain, so an AppError wrapped by
// fmt.Errorf("...: %w", err) still maps to the right status.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, apperror.ErrConflict):
			status = http.StatusConflict
		}
		writeResponse(w, model.Fail[any](appErr.Message, status))
		return
	}

	// Unknown error: NEVER expose internal details to the client.
	writeResponse(w, model.Fail[any]("An internal error occurred", http.StatusInternalServerError))
}

// decodeJSON reads the request body into dst. A malformed body is reported
// as a validation error so writeError turns it into a 400.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.ValidationFailed("body", "Invalid JSON body")
	}
	return nil
}
