package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-registry/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.services.AppInfoService.GetVersionInfo(r.Context()), http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.services.AppInfoService.Health(r.Context()), http.StatusOK)
}

// detailedHealth answers 503 when any component reports DOWN.
func (h *Handler) detailedHealth(w http.ResponseWriter, r *http.Request) {
	resp := h.services.AppInfoService.DetailedHealth(r.Context())

	status := http.StatusOK
	if resp.Status != models.HealthStatusUp {
		status = http.StatusServiceUnavailable
	}
	h.writeJSON(w, r, resp, status)
}
