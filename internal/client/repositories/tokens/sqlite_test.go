package tokens

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/gamezone/gamezone/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE tokens (
  name       TEXT PRIMARY KEY,
  account_id TEXT NOT NULL,
  token      TEXT NOT NULL,
  updated_at INTEGER NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSaveAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	at := time.Unix(1_700_000_000, 0)

	require.NoError(t, r.Save(ctx, Token{Name: "alice", AccountID: "a-1", Token: "t1", UpdatedAt: at}))

	got, err := r.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "a-1", got.AccountID)
	assert.Equal(t, "t1", got.Token)
	assert.True(t, at.Equal(got.UpdatedAt))
}

func TestSave_ReplacesExisting(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, Token{Name: "alice", AccountID: "a-1", Token: "old"}))
	require.NoError(t, r.Save(ctx, Token{Name: "alice", AccountID: "a-2", Token: "new"}))

	got, err := r.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "a-2", got.AccountID)
	assert.Equal(t, "new", got.Token)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestGet_Missing(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	got, err := r.Get(context.Background(), "nobody")
	require.ErrorIs(t, err, common.ErrorNotFound)
	assert.Nil(t, got)
}

func TestListAndDelete(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, Token{Name: "bob", AccountID: "b", Token: "tb"}))
	require.NoError(t, r.Save(ctx, Token{Name: "alice", AccountID: "a", Token: "ta"}))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alice", list[0].Name)
	assert.Equal(t, "bob", list[1].Name)

	require.NoError(t, r.Delete(ctx, "alice"))
	require.NoError(t, r.Delete(ctx, "alice"))

	_, err = r.Get(ctx, "alice")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestClosedDB_ErrorsWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	err := r.Save(ctx, Token{Name: "x"})
	require.ErrorContains(t, err, "failed to save token[x]")

	_, err = r.Get(ctx, "x")
	require.ErrorContains(t, err, "failed to get token[x]")

	_, err = r.List(ctx)
	require.ErrorContains(t, err, "failed to list tokens")

	err = r.Delete(ctx, "x")
	require.ErrorContains(t, err, "failed to delete token[x]")
}
