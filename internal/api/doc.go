// Package api contains the HTTP handlers for the REST surface. Each
// handler binds one (resource, verb) pair: it parses path and query
// parameters, validates the decoded body, invokes the corresponding
// store operation, and maps the outcome to a JSON response with the
// appropriate status code.
package api
