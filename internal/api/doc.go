// Package api implements the HTTP handlers of the linkden core. Every
// handler answers the {response, status} envelope; internal errors are
// mapped to status codes centrally and never leak raw error text.
package api
