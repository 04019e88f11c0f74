package handler

import (
	"testing"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.Defaults()

	h, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	cfg := config.Defaults()
	cfg.Server.HTTPAddress = ""

	h, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_RouterIsBuilt(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.Defaults(), logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, h.HTTP.Init())
}
