package auth

import "context"

// Identity is the authenticated caller of a request.
type Identity struct {
	AccountID string
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity placed by the gate, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok || id.AccountID == "" {
		return Identity{}, false
	}
	return id, true
}
