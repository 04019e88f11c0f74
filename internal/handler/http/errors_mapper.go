package http

import (
	"errors"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/MKhiriev/go-user-registry/internal/app"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/service"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/internal/utils"
	"github.com/MKhiriev/go-user-registry/internal/validators"
	"github.com/MKhiriev/go-user-registry/models"
)

var errorStatusMap = map[error]int{
	service.ErrUserNotFound: http.StatusNotFound,
	service.ErrInvalidToken: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,

	ErrMissingToken:               http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidID:                  http.StatusBadRequest,
	ErrBlankPathParam:             http.StatusBadRequest,
	ErrInvalidBody:                http.StatusBadRequest,
	ErrRouteNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:           http.StatusMethodNotAllowed,
	utils.ErrEmptyBody:            http.StatusBadRequest,
}

func statusFromError(err error) int {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorCategory is the "error" field of an error response.
func errorCategory(err error, status int) string {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return app.CategoryValidationFailed
	}
	if status == http.StatusConflict {
		return app.CategoryConflict
	}
	return http.StatusText(status)
}

// errorMessage never exposes the text of an unexpected error.
func errorMessage(err error, status int) string {
	var validationErr *validators.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return app.MsgValidationFailed
	case status == http.StatusInternalServerError:
		return app.MsgInternalServerError
	default:
		return err.Error()
	}
}

// writeError answers with the JSON error body for err. stack is attached to
// the details outside production when it is non-nil.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, stack []byte) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	resp := models.ErrorResponse{
		Error:         errorCategory(err, status),
		Message:       errorMessage(err, status),
		CorrelationID: w.Header().Get(traceIDHeader),
		Timestamp:     h.now().UTC(),
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		resp.Errors = validationErr.Messages
	}

	if !h.production && status == http.StatusInternalServerError {
		resp.Details = &models.ErrorDetails{
			Type:  failureType(err),
			Cause: err.Error(),
		}
		if stack == nil {
			stack = debug.Stack()
		}
		resp.Details.Stack = stackLines(stack)
	}

	if status == http.StatusInternalServerError {
		log.Err(err).Str("func", "*Handler.writeError").Msg("unexpected error")
	}

	if _, writeErr := utils.WriteJSON(w, resp, status); writeErr != nil {
		log.Err(writeErr).Str("func", "*Handler.writeError").Msg("error writing error response")
	}
}

func stackLines(stack []byte) []string {
	lines := strings.Split(strings.TrimSpace(string(stack)), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
