// Package tokens keeps the session tokens issued by the server, one per
// author name, in the client's local SQLite file.
package tokens

import (
	"context"
	"time"
)

// Token is a credential issued to an author at registration.
type Token struct {
	Name      string
	AccountID string
	Token     string
	UpdatedAt time.Time
}

type Repository interface {
	// Save inserts or replaces the token stored under t.Name.
	Save(ctx context.Context, t Token) error
	// Get returns common.ErrorNotFound when no token is stored for name.
	Get(ctx context.Context, name string) (*Token, error)
	List(ctx context.Context) ([]Token, error)
	Delete(ctx context.Context, name string) error
}
