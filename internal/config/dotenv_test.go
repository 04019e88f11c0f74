// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv_ExplicitFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "registry.env")
	require.NoError(t, os.WriteFile(p, []byte("APP_VERSION=from-dotenv\n"), 0o600))
	t.Setenv("APP_VERSION", "") // registers cleanup; cleared below so dotenv can set it
	require.NoError(t, os.Unsetenv("APP_VERSION"))

	require.NoError(t, loadDotEnv(p))

	assert.Equal(t, "from-dotenv", os.Getenv("APP_VERSION"))
}

func TestLoadDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	p := filepath.Join(t.TempDir(), "registry.env")
	require.NoError(t, os.WriteFile(p, []byte("APP_LOG_LEVEL=debug\n"), 0o600))
	t.Setenv("APP_LOG_LEVEL", "warn")

	require.NoError(t, loadDotEnv(p))

	assert.Equal(t, "warn", os.Getenv("APP_LOG_LEVEL"))
}

func TestLoadDotEnv_MissingExplicitFile(t *testing.T) {
	err := loadDotEnv(filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading env file")
}

func TestLoadDotEnv_MissingDefaultFileIsIgnored(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	assert.NoError(t, loadDotEnv(""))
}
