package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gamezone/gamezone/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	c, err := NewRedisCache(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c, mr
}

func TestRedisCache_PutGet(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "acc-1", "tok-1", common.SessionTTL))

	got, err := c.Get(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got)

	raw, err := mr.Get("session:acc-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", raw)
	assert.Equal(t, 600*time.Second, mr.TTL("session:acc-1"))
}

func TestRedisCache_GetIsIdempotent(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "acc-1", "tok-1", time.Minute))

	first, err := c.Get(ctx, "acc-1")
	require.NoError(t, err)
	second, err := c.Get(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRedisCache_PutOverwritesPerAccount(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "a", "t1", time.Minute))
	require.NoError(t, c.Put(ctx, "b", "t2", time.Minute))
	require.NoError(t, c.Put(ctx, "a", "t3", time.Minute))

	got, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "t3", got)

	got, err = c.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "t2", got)
}

func TestRedisCache_MissingAndExpired(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	_, err := c.Get(ctx, "nobody")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, c.Put(ctx, "acc-1", "tok-1", common.SessionTTL))
	mr.FastForward(common.SessionTTL + time.Second)

	_, err = c.Get(ctx, "acc-1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRedisCache_ServerDown(t *testing.T) {
	c, mr := newCache(t)
	mr.Close()

	_, err := c.Get(context.Background(), "acc-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
	assert.Error(t, c.Ping(context.Background()))
}

func TestNewRedisCache_Errors(t *testing.T) {
	_, err := NewRedisCache(context.Background(), "not-a-url")
	assert.Error(t, err)

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	_, err = NewRedisCache(context.Background(), "redis://"+addr)
	assert.Error(t, err)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "session:abc", Key("abc"))
}
