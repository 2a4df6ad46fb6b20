package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/SlotMock_Go/internal/domain"
)

// ErrorResponse represents an error response. Every error body carries a
// single human-readable "error" string.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// wire-compatible messages. NotFound -> 404, validation and funds errors ->
// 400, duplicate-settlement conflicts -> 409, everything else -> 500 with a
// generic message so no internal detail leaks.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundHTTP
	case errors.Is(err, domain.ErrTransactionNotFound):
		return http.StatusNotFound, ErrMsgTransactionNotFoundHTTP
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgInsufficientBalance
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountHTTP
	case errors.Is(err, domain.ErrBetMismatch):
		return http.StatusBadRequest, ErrMsgBetMismatchHTTP
	case errors.Is(err, domain.ErrWinMismatch):
		return http.StatusBadRequest, ErrMsgWinMismatchHTTP
	case errors.Is(err, domain.ErrAlreadyPaid):
		return http.StatusConflict, ErrMsgAlreadyPaidHTTP
	case errors.Is(err, domain.ErrAlreadySpun):
		return http.StatusConflict, ErrMsgAlreadySpunHTTP
	case errors.Is(err, domain.ErrEmptyMessage):
		return http.StatusBadRequest, ErrMsgEmptyMessageHTTP
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs the failure and writes the mapped error response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	log := sloggerFromRequest(r)
	if status == http.StatusInternalServerError {
		log.Error("Operation failed", "op", opName, "error", err)
	} else {
		log.Warn("Request rejected", "op", opName, "status", status, "error", err)
	}
	respondError(w, status, message)
}
