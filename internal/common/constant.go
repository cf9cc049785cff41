// Package common contains shared constants and sentinel errors used across
// GameZone components.
package common

import "time"

// AuthorizationHeaderName is the gRPC metadata key used to carry the
// session token on inbound and outbound requests.
const AuthorizationHeaderName = "authorization"

// BearerPrefix is accepted (case-insensitively) in front of a presented token.
const BearerPrefix = "Bearer "

// SessionTTL is the lifetime of a token parked in the session cache.
const SessionTTL = 10 * time.Minute
