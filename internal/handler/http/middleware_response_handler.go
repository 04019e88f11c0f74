// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
)

// responseWriter is a thin decorator around [http.ResponseWriter] that
// intercepts WriteHeader and Write calls to capture response metadata.
//
// Bytes are passed to the underlying writer unchanged. The first bodyLimit
// bytes are additionally copied into body so that withLogging can log the
// response after the handler has returned. A zero bodyLimit disables the
// copy.
//
// WriteHeader is forwarded to the underlying writer exactly once:
// subsequent calls are silently ignored, mirroring the behaviour documented
// by the [http.ResponseWriter] interface.
type responseWriter struct {
	http.ResponseWriter

	// status is the HTTP status code recorded on the first WriteHeader call.
	// It is zero until WriteHeader (or an implicit WriteHeader via Write) is called.
	status int

	// wroteHeader reports whether WriteHeader has already been called.
	wroteHeader bool

	// size is the running total of bytes successfully written to the response body.
	size int

	bodyLimit int
	body      bytes.Buffer
}

func newResponseWriter(w http.ResponseWriter, bodyLimit int) *responseWriter {
	return &responseWriter{ResponseWriter: w, bodyLimit: bodyLimit}
}

// WriteHeader records the status code and forwards it to the underlying
// [http.ResponseWriter] exactly once.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write writes b to the underlying [http.ResponseWriter], implicitly
// calling WriteHeader with [http.StatusOK] first if needed.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n

	if room := w.bodyLimit - w.body.Len(); room > 0 {
		if room > n {
			room = n
		}
		w.body.Write(b[:room])
	}
	return n, err
}

// Started reports whether any part of the response has been sent.
func (w *responseWriter) Started() bool {
	return w.wroteHeader
}

// Status returns the written status, treating "nothing written" as 200
// the way net/http does.
func (w *responseWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// Unwrap lets [http.ResponseController] reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
