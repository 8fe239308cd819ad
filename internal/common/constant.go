// Package common contains constants, helpers and sentinel errors shared by
// the terminal client and the development backend.
package common

const (
	// AuthorizationHeader carries the session token on every authenticated
	// request to either backend.
	AuthorizationHeader = "Authorization"

	// BearerScheme prefixes the token inside AuthorizationHeader.
	BearerScheme = "Bearer"
)
