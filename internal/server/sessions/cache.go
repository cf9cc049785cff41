// Package sessions parks the most recently issued session token per account
// in Redis with a bounded lifetime.
package sessions

import (
	"context"
	"time"
)

// Cache stores one token per account.
type Cache interface {
	// Put overwrites the token for accountID and sets its TTL.
	Put(ctx context.Context, accountID, token string, ttl time.Duration) error

	// Get returns common.ErrorNotFound when nothing is cached for accountID.
	Get(ctx context.Context, accountID string) (string, error)

	Close() error
}

// Key is the Redis key the token for accountID lives under.
func Key(accountID string) string {
	return "session:" + accountID
}
