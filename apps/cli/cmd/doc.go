// Package cmd implements the domspec CLI commands using Cobra.
//
// Available commands:
//   - check: Load fixtures and report whether they parse
//   - read: Print fixture content as the loader sees it
//   - init: Create a config file and an example fixture
//   - version: Show domspec version information
//
// Settings come from .domspec.json or .domspec.yaml and may be overridden
// by flags or DOMSPEC_* environment variables.
package cmd
