// Package common contains constants and sentinel errors shared by the
// FarmChainX client packages.
package common

// Keys of the durable client-side state. Exactly one key holds the serialized
// session; the role key is the dispatcher's last-known-role fallback.
const (
	StorageKeyUser = "user"
	StorageKeyRole = "userRole"
)

// RequestIDHeaderName is set on every outbound API request.
const RequestIDHeaderName = "X-Request-ID"

// Navigation targets used by the guard and the dashboard dispatcher.
const (
	PathHome       = "/"
	PathLogin      = "/login"
	PathAdminLogin = "/admin/login"
)
