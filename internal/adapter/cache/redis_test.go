package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/hugohenrick/toko-digital/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRedis usa o Redis de REDIS_TEST_ADDR; sem ele os testes são ignorados
func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR não definido")
	}

	rdb, err := NewRedisClient(context.Background(), config.RedisConfig{Addr: addr, DB: 15})
	require.NoError(t, err)
	require.NoError(t, rdb.FlushDB(context.Background()).Err())
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestStatsKey(t *testing.T) {
	assert.Equal(t, "stats:store:abc:30d", StatsKey("store", "abc", "30d"))
}

func TestNoop(t *testing.T) {
	var dest map[string]int
	found, err := Noop{}.Get(context.Background(), "x", &dest)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestStatsCache_RoundTripAndFlush(t *testing.T) {
	rdb := newTestRedis(t)
	c := NewStatsCache(rdb, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, StatsKey("platform", "30d"), map[string]int{"users": 3}))
	require.NoError(t, rdb.Set(ctx, "other", "1", 0).Err())

	var got map[string]int
	found, err := c.Get(ctx, StatsKey("platform", "30d"), &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, got["users"])

	removed, err := c.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, int64(1), rdb.Exists(ctx, "other").Val())
}

func TestSessionStore(t *testing.T) {
	rdb := newTestRedis(t)
	s := NewSessionStore(rdb)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "t1", "u1", time.Minute))
	require.NoError(t, s.Save(ctx, "t2", "u1", time.Minute))

	ok, err := s.Exists(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, ok)

	deleted, err := s.Delete(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, deleted)
	ok, _ = s.Exists(ctx, "t1")
	assert.False(t, ok)

	// segundo consumo do mesmo token não encontra nada
	deleted, err = s.Delete(ctx, "t1")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.False(t, rdb.SIsMember(ctx, UserSessionsPrefix+"u1", "t1").Val())

	require.NoError(t, s.DeleteAllForUser(ctx, "u1"))
	ok, _ = s.Exists(ctx, "t2")
	assert.False(t, ok)
}

func TestTrafficCounter(t *testing.T) {
	rdb := newTestRedis(t)
	c := NewTrafficCounter(rdb)
	ctx := context.Background()
	day := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, c.RecordView(ctx, "s1", "v1", day))
	require.NoError(t, c.RecordView(ctx, "s1", "v1", day))
	require.NoError(t, c.RecordView(ctx, "s1", "v2", day))
	require.NoError(t, c.RecordView(ctx, "s1", "", day))

	views, visitors, err := c.Counts(ctx, "s1", day)
	require.NoError(t, err)
	assert.Equal(t, 4, views)
	assert.Equal(t, 2, visitors)

	views, visitors, err = c.Counts(ctx, "s1", day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Zero(t, views)
	assert.Zero(t, visitors)
}
