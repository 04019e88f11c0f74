package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/rs/zerolog"
)

// maxLoggedBody caps every logged request and response body.
const maxLoggedBody = 4 << 10

const redacted = "[REDACTED]"

var sensitiveHeaders = map[string]struct{}{
	"Authorization": {},
	"Cookie":        {},
	"Set-Cookie":    {},
	"X-Api-Key":     {},
}

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		event := log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("query", r.URL.RawQuery).
			Dict("headers", headersDict(r.Header))
		if hasLoggedBody(r.Method) {
			body, err := readAndRestoreBody(r)
			if err != nil {
				log.Err(err).Str("func", "*Handler.withLogging").Msg("error reading request body")
			}
			event = event.Str("body", truncate(body))
		}
		event.Msg("request received")

		lw := newResponseWriter(w, maxLoggedBody+1)

		// a panic is logged as 500 and passed on to withErrorHandling
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status", http.StatusInternalServerError).
					Dur("duration", time.Since(start)).
					Str("panic", fmt.Sprint(rec)).
					Msg("request failed")
				panic(rec)
			}
		}()

		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		status := lw.Status()

		levelForStatus(log, status).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size).
			Dict("headers", headersDict(lw.Header())).
			Str("body", truncate(lw.body.Bytes())).
			Msg("response sent")
	})
}

func hasLoggedBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// readAndRestoreBody reads the whole body and puts an identical reader back
// so the handler still sees it.
func readAndRestoreBody(r *http.Request) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}
	body, err := io.ReadAll(r.Body)
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, err
}

func headersDict(header http.Header) *zerolog.Event {
	dict := zerolog.Dict()
	for name, values := range header {
		if _, ok := sensitiveHeaders[http.CanonicalHeaderKey(name)]; ok {
			dict = dict.Str(name, redacted)
			continue
		}
		dict = dict.Str(name, strings.Join(values, ", "))
	}
	return dict
}

func truncate(body []byte) string {
	if len(body) <= maxLoggedBody {
		return string(body)
	}
	return string(body[:maxLoggedBody]) + "...(truncated)"
}

func levelForStatus(log *logger.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case status >= http.StatusBadRequest:
		return log.Warn()
	default:
		return log.Info()
	}
}
