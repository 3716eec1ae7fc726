// Package config handles configuration loading and management for domspec.
//
// It provides functionality for:
//   - Loading configuration from .domspec.json or .domspec.yaml files
//   - Default configuration values
//   - Merging command-line overrides on top of file settings
package config
