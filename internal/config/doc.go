// Package config provides configuration loading, merging, and validation
// facilities for the user registry.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (optional, loaded into the process environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Fields left empty by every source receive the defaults from [Defaults].
// The main entry point is [GetStructuredConfig].
package config
