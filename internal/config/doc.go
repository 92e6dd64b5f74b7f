// Package config loads server settings from an optional YAML file and
// PADSALA_-prefixed environment variables through viper, applies defaults,
// and validates the result before anything else starts.
package config
