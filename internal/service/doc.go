// Package service contains the two request-handling components of the
// linkden core: the account service (irreversible cascading account
// deletion coordinated with billing cancellation) and the collection
// service (validated creation of hierarchical collections). Services
// validate first, mutate inside a single store transaction, then run
// best-effort side effects strictly after commit.
package service
