// Package common defines shared constants and sentinel errors used across
// client and server layers of GameZone. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// ErrUnauthenticated is the class every authentication rejection belongs to.
	ErrUnauthenticated = errors.New("authentication required")

	// Token errors reported by the credential codec.
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrTokenExpired     = errors.New("token expired")

	// Catalog errors.
	ErrPageOutOfRange = errors.New("more data does not exist")
)
