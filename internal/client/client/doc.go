// Package client is the console's boundary with the platform backend.
//
// # Overview
//
// The package provides:
//  1. The Client interface: every REST call the console makes (login,
//     signup, identity, collection listings and the write operations behind
//     mutation commands).
//  2. HTTPClient, a net/http implementation that decodes the backend's JSON
//     envelopes, normalizes collections into typed records and attaches the
//     session token using the header style each endpoint family expects
//     ("auth-token: <tok>" or "Authorization: Bearer <tok>").
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     SQLite file holding the session and cache envelopes.
//
// # Error Handling
//
// Failures are classified with sentinel errors matched via errors.Is:
// ErrTransport (network failure or timeout), ErrUnavailable (backend not
// reachable at all), ErrDecode (non-JSON or unexpected shape), ErrRejected
// (the backend answered success=false; see RejectedError for its message),
// ErrUnauthorized and ErrNotLoggedIn.
//
// # Calls and contexts
//
// Each method performs exactly one HTTP attempt and never retries. Deadlines
// come from the caller's context.
package client
