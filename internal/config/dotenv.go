// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

const (
	// envFileVariable names the environment variable holding an explicit
	// .env file path.
	envFileVariable = "ENV_FILE"

	defaultEnvFile = ".env"
)

// loadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables already present in the environment are never overwritten.
//
// When path is empty the default ".env" in the working directory is tried
// and its absence is not an error. An explicitly requested file that cannot
// be read is reported.
func loadDotEnv(path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading env file %q: %w", path, err)
	}

	return nil
}
