package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-user-registry/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithErrorHandling_RecoversPanics(t *testing.T) {
	tests := []struct {
		name       string
		value      any
		wantStatus int
		wantType   string
	}{
		{name: "string value", value: "boom", wantStatus: http.StatusInternalServerError, wantType: "string"},
		{name: "plain error", value: fmt.Errorf("disk full"), wantStatus: http.StatusInternalServerError, wantType: "*errors.errorString"},
		{name: "known error keeps its status", value: service.ErrUserNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, nil)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.value)
			})

			rr := httptest.NewRecorder()
			require.NotPanics(t, func() {
				h.withErrorHandling(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/users", nil))
			})

			require.Equal(t, tt.wantStatus, rr.Code)
			resp := decodeErrorResponse(t, rr)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.Equal(t, "An unexpected error occurred", resp.Message)
				require.NotNil(t, resp.Details)
				assert.Equal(t, tt.wantType, resp.Details.Type)
				assert.NotEmpty(t, resp.Details.Stack)
			} else {
				assert.Nil(t, resp.Details)
			}
		})
	}
}

func TestWithErrorHandling_ProductionHidesDetails(t *testing.T) {
	h := newTestHandler(t, nil)
	h.production = true
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("secret internals")
	})

	rr := httptest.NewRecorder()
	h.withErrorHandling(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Nil(t, decodeErrorResponse(t, rr).Details)
	assert.NotContains(t, rr.Body.String(), "secret internals")
}

func TestWithErrorHandling_ResponseAlreadyStarted(t *testing.T) {
	h := newTestHandler(t, nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("partial"))
		panic("late failure")
	})

	rr := httptest.NewRecorder()
	h.withErrorHandling(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "partial", rr.Body.String())
}

func TestWithErrorHandling_RepanicsAbortHandler(t *testing.T) {
	h := newTestHandler(t, nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.withErrorHandling(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestWithErrorHandling_PassThrough(t *testing.T) {
	h := newTestHandler(t, nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	rr := httptest.NewRecorder()
	h.withErrorHandling(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rr.Code)
}
