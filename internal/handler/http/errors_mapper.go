package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/estate-hub/internal/logger"
	"github.com/MKhiriev/estate-hub/internal/service"
	"github.com/MKhiriev/estate-hub/internal/store"
	"github.com/MKhiriev/estate-hub/internal/utils"
	"github.com/MKhiriev/estate-hub/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:          http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,
	service.ErrTokenIsInvalid:      http.StatusUnauthorized,
	service.ErrForbidden:           http.StatusForbidden,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

// errorMessageMap holds the canonical client-facing message for error classes
// whose raw text should not be echoed verbatim.
var errorMessageMap = map[error]string{
	service.ErrWrongPassword: "invalid email or password",
	service.ErrForbidden:     "you can only modify your own account",

	store.ErrUserAlreadyExists: "username or email already taken",
	store.ErrUserNotFound:      "user not found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	// internal failure detail stays in the server log
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}

	// validation failures carry the field-level reason the client needs
	if errors.Is(err, service.ErrValidation) {
		return err.Error()
	}

	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return http.StatusText(status)
}

// writeError renders the uniform JSON error body for err, deriving the HTTP
// status and client-facing message from the error class.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	writeErrorStatus(w, r, err, status, messageFromError(err, status))
}

// writeErrorStatus renders the uniform JSON error body with an explicit
// status and client-facing message. Uniqueness conflicts additionally carry
// the colliding field names.
func writeErrorStatus(w http.ResponseWriter, r *http.Request, err error, status int, message string) {
	log := logger.FromRequest(r)
	log.Err(err).Int("status", status).Msg("request failed")

	response := models.ErrorResponse{Error: message}

	var conflict *store.ConflictError
	if errors.As(err, &conflict) {
		response.ConflictFields = conflict.Fields
	}

	if _, writeErr := utils.WriteJSON(w, response, status); writeErr != nil {
		log.Err(writeErr).Msg("failed to write error response")
	}
}
