// Package normalize maps raw backend JSON objects onto typed records.
//
// Every function here is total: any value produced by decoding well-formed
// JSON into map[string]any yields a fully populated record, with defaults
// for missing or malformed fields ("Unknown" for names, "N/A" for other
// text, 0 for numbers). Nothing in this package panics or performs I/O.
//
// Records that arrive without a backend identifier get a synthetic one from
// the Batch that normalizes them. A Batch combines a random UUID with a
// monotonic counter, so synthetic ids are unique inside one load and across
// loads.
package normalize
