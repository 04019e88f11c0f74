package http

import (
	_ "embed"
	"net/http"
)

//go:embed docs/openapi.json
var openAPIDocument []byte

func (h *Handler) openAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(openAPIDocument); err != nil {
		h.logger.Err(err).Str("func", "*Handler.openAPI").Msg("error writing openapi document")
	}
}
