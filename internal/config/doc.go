// Package config loads and validates the server's runtime settings from
// KOTOBA_-prefixed environment variables: the HTTP port, log level,
// request timeout, and the PostgreSQL connection pool parameters.
package config
