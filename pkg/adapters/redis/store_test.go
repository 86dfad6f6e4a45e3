package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fluix/pkg/adapters/redis"
	"github.com/aretw0/fluix/pkg/domain"
	"github.com/aretw0/fluix/pkg/ports"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)

	store := redis.NewFromClient(client)
	ports.RunSnapshotStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newClient(t)

	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()
	snap := &domain.Snapshot{
		Toasts: []domain.Item{{ID: "a", InstanceID: "1", State: domain.StateInfo}},
	}

	require.NoError(t, store.Save(ctx, "main", snap))

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, keys, "main")

	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "main")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newClient(t)

	store := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "main", &domain.Snapshot{}))

	assert.True(t, mr.Exists("custom:app:main"), "Expected key with custom prefix to exist")
	assert.True(t, mr.Exists("custom:app:index"), "Expected index with custom prefix to exist")

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"main"}, keys)

	require.NoError(t, store.Delete(ctx, "main"))
	keys, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestRedisStore_DefaultPrefixAndEncoding(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client)

	snap := &domain.Snapshot{
		Toasts: []domain.Item{{ID: "p", InstanceID: "1", Duration: domain.Persistent}},
	}
	require.NoError(t, store.Save(context.Background(), "main", snap))

	raw, err := mr.Get(redis.DefaultPrefix + "main")
	require.NoError(t, err)
	assert.Contains(t, raw, `"duration_ms":null`)
}
