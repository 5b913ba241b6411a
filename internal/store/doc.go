// Package store provides abstractions for data persistence: one
// interface per entity, a DBTX abstraction over connections and
// transactions, and the RunInTransaction primitive that gives the
// account deletion cascade its atomicity guarantee.
package store
