package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fluix/pkg/adapters/redis"
	"github.com/aretw0/fluix/pkg/domain"
)

func TestPublisher_RoundTrip(t *testing.T) {
	mr, client := newClient(t)
	pub := redis.NewPublisher(client, redis.WithChannel("test:snapshots"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := pub.Subscribe(ctx)
	require.NoError(t, err)

	// Garbage on the channel is skipped.
	mr.Publish("test:snapshots", "not json")

	snap := &domain.Snapshot{
		Toasts: []domain.Item{{ID: "a", InstanceID: "1", Title: "Hello", State: domain.StateSuccess}},
		Config: domain.Config{Position: domain.PositionBottomRight},
	}
	require.NoError(t, pub.Publish(ctx, snap))

	select {
	case got := <-ch:
		require.Len(t, got.Toasts, 1)
		assert.Equal(t, "Hello", got.Toasts[0].Title)
		assert.Equal(t, domain.PositionBottomRight, got.Config.Position)
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot was not delivered")
	}

	cancel()
	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel closes with the context")
	case <-time.After(2 * time.Second):
		t.Fatal("channel did not close")
	}
}
