package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-user-registry/internal/logger"
)

// withErrorHandling recovers a panic raised by any inner middleware or
// handler and answers it with the JSON error body. A panic value that is
// an error goes through the same status mapping as handler errors; any
// other value becomes 500.
//
// [http.ErrAbortHandler] is re-panicked so net/http can abort the
// connection. If the response has already started nothing more is written.
func (h *Handler) withErrorHandling(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := newResponseWriter(w, 0)

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler { //nolint:errorlint
				panic(rec)
			}

			stack := debug.Stack()
			err := panicError(rec)

			log := logger.FromRequest(r)
			log.Error().
				Str("func", "*Handler.withErrorHandling").
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", stack).
				Msg("recovered from panic")

			if rw.Started() {
				return
			}
			h.writeError(rw, r, err, stack)
		}()

		next.ServeHTTP(rw, r)
	})
}

// recoveredPanic wraps a recovered value that is not an error.
type recoveredPanic struct {
	value any
}

func (p recoveredPanic) Error() string {
	return fmt.Sprintf("panic: %v", p.value)
}

// panicError turns a recovered value into an error. Error values are kept
// so they can still match the status table.
func panicError(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return recoveredPanic{value: rec}
}

// failureType names the dynamic type of the failure for error details.
func failureType(err error) string {
	var p recoveredPanic
	if errors.As(err, &p) {
		return fmt.Sprintf("%T", p.value)
	}
	return fmt.Sprintf("%T", err)
}
