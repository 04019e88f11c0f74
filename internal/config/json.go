package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of the configuration.
// Durations are written as Go duration strings ("15s", "1m").
type StructuredJSONConfig struct {
	App struct {
		Environment                 string   `json:"environment"`
		Version                     string   `json:"version"`
		LogLevel                    string   `json:"log_level"`
		AuthExemptPaths             []string `json:"auth_exempt_paths"`
		EmailUniqueIncludingDeleted bool     `json:"email_unique_including_deleted"`
		SeedDemoData                bool     `json:"seed_demo_data"`
	} `json:"app"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		ReadTimeout     Duration `json:"read_timeout"`
		WriteTimeout    Duration `json:"write_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server"`

	Storage struct {
		Driver string `json:"driver"`
		DB     struct {
			DSN string `json:"dsn"`
		} `json:"db"`
	} `json:"storage"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Environment:                 jsonCfg.App.Environment,
			Version:                     jsonCfg.App.Version,
			LogLevel:                    jsonCfg.App.LogLevel,
			AuthExemptPaths:             jsonCfg.App.AuthExemptPaths,
			EmailUniqueIncludingDeleted: jsonCfg.App.EmailUniqueIncludingDeleted,
			SeedDemoData:                jsonCfg.App.SeedDemoData,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			ReadTimeout:     time.Duration(jsonCfg.Server.ReadTimeout),
			WriteTimeout:    time.Duration(jsonCfg.Server.WriteTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Storage: Storage{
			Driver: jsonCfg.Storage.Driver,
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
