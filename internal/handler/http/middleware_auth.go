package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/utils"
)

const (
	apiKeyHeader   = "X-API-Key"
	tokenQueryName = "token"
	bearerScheme   = "Bearer"
)

// auth is an HTTP middleware that enforces token authentication for every
// path that does not start with one of the exempt prefixes.
//
// The token is taken from the first source that carries one:
//   - "Authorization: Bearer <token>"
//   - "X-API-Key: <token>"
//   - "?token=<token>"
//
// A missing or rejected token is answered with 401. On success the
// [models.Principal] returned by [service.AuthService.ParseToken] is stored
// in the request context with [utils.WithPrincipal].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.isExempt(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		token, err := tokenFromRequest(r)
		if err != nil {
			log.Warn().Err(err).Str("func", "*Handler.auth").Msg("request rejected")
			h.writeError(w, r, err, nil)
			return
		}

		ctx := r.Context()
		principal, err := h.services.AuthService.ParseToken(ctx, token)
		if err != nil {
			log.Warn().Err(err).Str("func", "*Handler.auth").Msg("error occurred during parsing token")
			h.writeError(w, r, err, nil)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(ctx, principal)))
	})
}

func (h *Handler) isExempt(path string) bool {
	for _, prefix := range h.exemptPaths {
		if prefix != "" && strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func tokenFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		return getTokenFromAuthHeader(authHeader)
	}
	if key := strings.TrimSpace(r.Header.Get(apiKeyHeader)); key != "" {
		return key, nil
	}
	if token := strings.TrimSpace(r.URL.Query().Get(tokenQueryName)); token != "" {
		return token, nil
	}
	return "", ErrMissingToken
}

// getTokenFromAuthHeader extracts the token from "Bearer <token>".
// The scheme is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}

	return token, nil
}
