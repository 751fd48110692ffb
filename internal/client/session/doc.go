// Package session persists the operator's login and decides which console
// pages the operator may reach.
package session
