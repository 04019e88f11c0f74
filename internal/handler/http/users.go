package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/utils"
	"github.com/MKhiriev/go-user-registry/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListActive(r.Context())
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	h.writeJSON(w, r, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	user, err := h.services.UserService.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	h.writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) getUserByEmail(w http.ResponseWriter, r *http.Request) {
	email, err := segmentFromPath(r, "email")
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	user, err := h.services.UserService.GetByEmail(r.Context(), email)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	h.writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) listUsersByDepartment(w http.ResponseWriter, r *http.Request) {
	department, err := segmentFromPath(r, "department")
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	users, err := h.services.UserService.GetByDepartment(r.Context(), department)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	h.writeJSON(w, r, users, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.createUser").Msg("invalid request body")
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err), nil)
		return
	}

	user, err := h.services.UserService.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	log.Info().Int64("user_id", user.ID).Str("func", "*Handler.createUser").Msg("user created")
	w.Header().Set("Location", fmt.Sprintf("/api/users/%d", user.ID))
	h.writeJSON(w, r, user, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromPath(r)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	var req models.UpdateUserRequest
	if err = utils.DecodeJSON(r, &req); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.updateUser").Msg("invalid request body")
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err), nil)
		return
	}

	user, err := h.services.UserService.Update(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	log.Info().Int64("user_id", user.ID).Str("func", "*Handler.updateUser").Msg("user updated")
	h.writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromPath(r)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	user, err := h.services.UserService.SoftDelete(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	log.Info().Int64("user_id", user.ID).Str("func", "*Handler.deleteUser").Msg("user deactivated")
	h.writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("error writing response")
	}
}

// idFromPath parses the {id} parameter; anything but a positive integer is
// rejected.
func idFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

// segmentFromPath returns the decoded and trimmed path parameter name.
func segmentFromPath(r *http.Request, name string) (string, error) {
	raw := chi.URLParam(r, name)
	value, err := url.PathUnescape(raw)
	if err != nil {
		value = raw
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrBlankPathParam, name)
	}
	return value, nil
}
