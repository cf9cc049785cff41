// Package metadata is a small key/value store for client settings kept in
// the local SQLite file, such as the author whose token is attached to calls.
package metadata

import (
	"context"
)

// ActiveAuthorKey holds the name of the author selected with "use".
const ActiveAuthorKey = "active_author"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error

	ActiveAuthor(ctx context.Context) (string, error)
	SetActiveAuthor(ctx context.Context, name string) error
}
