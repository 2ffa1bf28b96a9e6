// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. It provides
// type-safe access to the settings the server, the database pool and the
// change-event publisher need.
package config
