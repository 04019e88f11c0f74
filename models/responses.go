package models

import "time"

// ErrorResponse is the JSON body of every non-2xx response produced by the API.
type ErrorResponse struct {
	// Error is the error category, e.g. "Not Found" or "Validation Failed".
	Error string `json:"error"`

	// Message is a human-readable description safe to show to the caller.
	Message string `json:"message"`

	// CorrelationID is the per-request trace id (X-Trace-ID header).
	CorrelationID string `json:"correlationId"`

	Timestamp time.Time `json:"timestamp"`

	// Errors lists every field validation failure. Only set for 400 responses
	// caused by validation.
	Errors []string `json:"errors,omitempty"`

	// Details carries the failure type and stack. It is only filled outside
	// the production environment.
	Details *ErrorDetails `json:"details,omitempty"`
}

// ErrorDetails is debugging information attached to an [ErrorResponse].
type ErrorDetails struct {
	Type  string   `json:"type"`
	Cause string   `json:"cause,omitempty"`
	Stack []string `json:"stack,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// DetailedHealthResponse is returned by GET /health/detailed.
type DetailedHealthResponse struct {
	Status      string        `json:"status"`
	Timestamp   time.Time     `json:"timestamp"`
	Version     string        `json:"version"`
	Environment string        `json:"environment"`
	Uptime      string        `json:"uptime"`
	Storage     StorageHealth `json:"storage"`
	Goroutines  int           `json:"goroutines"`
}

// StorageHealth describes the state of the configured storage backend.
type StorageHealth struct {
	Driver      string `json:"driver"`
	Status      string `json:"status"`
	ActiveUsers int    `json:"activeUsers"`
	Error       string `json:"error,omitempty"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate"`
	BuildCommit string `json:"buildCommit"`
}

const (
	HealthStatusUp   = "UP"
	HealthStatusDown = "DOWN"
)
