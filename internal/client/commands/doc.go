// Package commands holds the row mutations an operator can trigger. Each
// command validates its own parameters, performs one backend call and
// describes the local change to apply when the call succeeds.
package commands
