// Package mocks provides hand-written mock implementations of the
// store and capability interfaces for unit tests. Mocks use function
// fields so individual tests can override exactly the behavior they
// exercise, with sensible in-memory defaults otherwise.
package mocks
