// Package store provides the durable SQLite-backed audit sink.
//
// It implements audit.Sink with the same bounded newest-first retention as
// the in-memory sink: every insert trims the table back to the cap inside
// the same transaction, so the log never grows past the most recent N
// records and eviction is invisible to callers.
//
// The database is opened with WAL mode for concurrent reads, a single
// writer connection to avoid SQLITE_BUSY, and a user_version-based
// migration hook for future schema changes.
package store
