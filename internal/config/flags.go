package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a *StructuredConfig.
//
// Flags:
//
//	-a server address in format [host]:port
//	-c/-config json file path with configs
//	-environment production or development
//	-log-level zerolog level name
//	-storage storage driver (memory, postgres, sqlite)
//	-d database DSN
//	-seed create demo employees at startup
//	-read-timeout, -write-timeout, -shutdown-timeout durations (e.g. "15s")
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var environment string
	var logLevel string
	var driver string
	var databaseDSN string
	var seed bool
	var readTimeout, writeTimeout, shutdownTimeout time.Duration

	fs := flag.NewFlagSet("go-user-registry", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&environment, "environment", "", "Environment: production or development")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&driver, "storage", "", "Storage driver: memory, postgres or sqlite")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.BoolVar(&seed, "seed", false, "Create demo employees at startup")
	fs.DurationVar(&readTimeout, "read-timeout", 0, "Server read timeout (e.g., 15s)")
	fs.DurationVar(&writeTimeout, "write-timeout", 0, "Server write timeout (e.g., 15s)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Environment:  environment,
			LogLevel:     logLevel,
			SeedDemoData: seed,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			ReadTimeout:     readTimeout,
			WriteTimeout:    writeTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Storage: Storage{
			Driver: driver,
			DB: DB{
				DSN: databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host binds all interfaces; otherwise the host must be
// "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
