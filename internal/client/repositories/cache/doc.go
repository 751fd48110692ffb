// Package cache persists cache envelopes: a serialized collection snapshot
// plus the instant it was captured. Resource stores read an envelope when a
// view mounts and rewrite it after every successful full fetch.
//
// Two implementations are provided: SQLiteRepository, which keeps payloads
// zstd-compressed in the cache_envelopes table, and MemoryRepository.
package cache
