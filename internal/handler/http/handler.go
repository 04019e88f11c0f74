package http

import (
	"time"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/service"
)

type Handler struct {
	services *service.Services

	// production hides failure details from error responses.
	production  bool
	exemptPaths []string

	now func() time.Time

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Str("environment", cfg.Environment).Msg("http handler created")
	return &Handler{
		services:    services,
		production:  cfg.IsProduction(),
		exemptPaths: cfg.AuthExemptPaths,
		now:         time.Now,
		logger:      logger,
	}
}
