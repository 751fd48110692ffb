// Package cli provides the interactive spinadmin console.
//
// It wires configuration, the local SQLite cache, the REST client, and an
// interactive REPL. Typical flow: restore the saved session (or prompt for a
// login), then execute operator commands until the user exits.
//
// Key features:
//   - Login / Signup / Logout for admins and executives
//   - Dashboard cards and per-range analytics
//   - Users, deposits, spin history, UPI entries, executives and chats, each
//     filterable by range, status and free text
//   - Row actions: approve deposits, block users, manage UPI ids, approve or
//     block executives, reply to chats
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
