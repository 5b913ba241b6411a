// Package postgres provides PostgreSQL implementations of the store
// interfaces. All implementations work against store.DBTX so the same
// code runs on a plain connection or inside a transaction, which is how
// the account deletion cascade composes its statements into one atomic
// unit.
package postgres
