// Package common holds constants shared by the spinadmin client layers.
package common

// AuthTokenHeaderName carries the raw session token on admin endpoints.
// Spin history and chat replies use a Bearer Authorization header instead.
const AuthTokenHeaderName = "auth-token"

// Keys of the persisted session in the local metadata table.
const (
	AdminTokenKey     = "adminToken"
	ExecutiveTokenKey = "executiveToken"
	UserRoleKey       = "userRole"
)
