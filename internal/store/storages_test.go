package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages_Memory(t *testing.T) {
	cfg := config.Defaults()

	s, err := NewStorages(context.Background(), cfg, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, config.DriverMemory, s.Driver)
	assert.NotNil(t, s.UserStorage)
	assert.NoError(t, s.Close())
}

func TestNewStorages_UnknownDriver(t *testing.T) {
	cfg := config.Defaults()
	cfg.Storage.Driver = "mongo"

	_, err := NewStorages(context.Background(), cfg, logger.Nop())

	assert.ErrorIs(t, err, ErrUnknownDriver)
}
