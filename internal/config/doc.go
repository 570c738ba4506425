// Package config loads and merges the journal-directory configuration
// from environment variables, command-line flags, and an optional JSON
// file. Later sources never override non-zero values from earlier ones;
// the merged result is validated before the application starts.
package config
