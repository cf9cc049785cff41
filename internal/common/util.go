package common

import "strings"

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Used to drop passwords from memory after use.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}

// StripBearer returns the token part of an authorization value. Both a raw
// token and "Bearer <token>" are accepted; surrounding spaces are trimmed.
// A value that is only "Bearer " comes back as "Bearer" and is judged as a
// token; only a blank value means no credential.
func StripBearer(value string) string {
	value = strings.TrimSpace(value)
	if len(value) >= len(BearerPrefix) && strings.EqualFold(value[:len(BearerPrefix)], BearerPrefix) {
		return strings.TrimSpace(value[len(BearerPrefix):])
	}
	return value
}
