// Package config loads and validates the squeeze configuration file.
// Defaults mirror the CLI flag defaults; flags always win over the file.
package config
