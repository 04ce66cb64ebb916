// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes error handling that keeps internal details out of client responses.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// safeFragments mark error messages that are fine to show to clients.
var safeFragments = []string{
	"required",
	"invalid",
	"not found",
	"must be",
	"cannot",
	"not a known",
}

// SafeError returns err's message to the client only when it is a user-facing
// validation or lookup message and code is below 500. Everything else is logged
// and replaced with a generic message.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	if code < 500 && isSafe(msg) {
		JSON(w, code, map[string]string{"error": msg})
		return
	}

	slog.Default().Error("request failed",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.Any("error", SanitizeError(err)))
	JSON(w, code, map[string]string{"error": genericMessage(code)})
}

func isSafe(msg string) bool {
	lower := strings.ToLower(msg)
	for _, frag := range safeFragments {
		if strings.Contains(lower, frag) {
			return true
		}
	}
	return false
}

func genericMessage(code int) string {
	if code == http.StatusGatewayTimeout {
		return "request timeout"
	}
	if code >= 500 {
		return "internal server error"
	}
	return strings.ToLower(http.StatusText(code))
}

// AppError is an error type that carries a user-facing message.
type AppError struct {
	UserMsg string // Message to display to users
	Err     error  // Internal error (logged for debugging)
	Code    int    // HTTP status code
}

// Error returns the error message, implementing the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

// Unwrap returns the underlying error, implementing the errors.Unwrap interface.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given parameters.
func NewAppError(code int, userMsg string, err error) *AppError {
	return &AppError{Code: code, UserMsg: userMsg, Err: err}
}

// Problem writes err using its AppError code and message when it has one,
// and falls back to SafeError with fallbackCode otherwise.
func Problem(w http.ResponseWriter, fallbackCode int, err error) {
	if err == nil {
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			slog.Default().Warn("application error",
				slog.Int("code", appErr.Code),
				slog.String("user_message", appErr.UserMsg),
				slog.Any("error", SanitizeError(appErr.Err)))
		}
		JSON(w, appErr.Code, map[string]string{"error": appErr.UserMsg})
		return
	}

	SafeError(w, fallbackCode, err)
}
