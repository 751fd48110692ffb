// Package store keeps one normalized collection in memory, backed by a
// timestamped cache envelope so a recent load can be reused without hitting
// the backend.
package store
