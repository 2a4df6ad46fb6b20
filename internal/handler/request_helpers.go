package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/osse101/SlotMock_Go/internal/logger"
)

// sloggerFromRequest returns the request-scoped logger
func sloggerFromRequest(r *http.Request) *slog.Logger {
	return logger.FromContext(r.Context())
}

// DecodeAndValidateRequest decodes a JSON request body, validates it against
// its struct tags, and writes the error response on failure. Malformed JSON
// and schema violations are both rejected with 400 before any business logic
// runs. If this function returns an error, the response has already been
// written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := sloggerFromRequest(r)

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(fmt.Sprintf("Invalid %s request", actionName), "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// GetIntQueryParam retrieves a required integer query parameter. If the
// parameter is missing or not an integer, it writes an error response and
// returns false.
func GetIntQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (int, bool) {
	log := sloggerFromRequest(r)

	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		log.Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return 0, false
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn(fmt.Sprintf("Invalid %s query parameter", paramName), "value", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidUserID)
		return 0, false
	}

	return value, true
}
