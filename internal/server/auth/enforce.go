package auth

import "context"

// Require returns the request identity or a KindUnauthenticated rejection.
// Callers must not touch storage when it fails.
func Require(ctx context.Context) (Identity, error) {
	id, ok := IdentityFromContext(ctx)
	if !ok {
		return Identity{}, reject(KindUnauthenticated)
	}
	return id, nil
}
