package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/fluix/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSnapshotStoreContract runs a suite of tests to verify that a SnapshotStore
// implementation adheres to the defined interface contract.
func RunSnapshotStoreContract(t *testing.T, store SnapshotStore) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405")

	newSnapshot := func() *domain.Snapshot {
		return &domain.Snapshot{
			Toasts: []domain.Item{
				{
					ID:         "saved",
					InstanceID: "1-abc",
					Title:      "Saved!",
					State:      domain.StateSuccess,
					Theme:      domain.ThemeLight,
					Position:   domain.PositionTopRight,
					Fill:       "#FFFFFF",
					Roundness:  16,
					Duration:   domain.DefaultDuration,
				},
				{
					ID:         "upload",
					InstanceID: "2-def",
					Title:      "Uploading",
					State:      domain.StateLoading,
					Theme:      domain.ThemeDark,
					Position:   domain.PositionBottomLeft,
					Roundness:  16,
					Duration:   domain.Persistent,
					Exiting:    true,
				},
			},
			Config: domain.Config{
				Position: domain.PositionBottomCenter,
				Layout:   domain.LayoutStack,
				Offset:   domain.OffsetPx(24),
				Defaults: &domain.Options{Fill: "#111111", Theme: domain.ThemeDark},
			},
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		snap := newSnapshot()

		err := store.Save(ctx, key, snap)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		require.Len(t, loaded.Toasts, 2)
		assert.Equal(t, "Saved!", loaded.Toasts[0].Title)
		assert.Equal(t, domain.DefaultDuration, loaded.Toasts[0].Duration)
		assert.True(t, loaded.Toasts[1].IsPersistent())
		assert.True(t, loaded.Toasts[1].Exiting)
		assert.Equal(t, domain.PositionBottomCenter, loaded.Config.Position)
		require.NotNil(t, loaded.Config.Offset)
		assert.Equal(t, "24px", loaded.Config.Offset.Uniform)
		require.NotNil(t, loaded.Config.Defaults)
		assert.Equal(t, "#111111", loaded.Config.Defaults.Fill)
		assert.Equal(t, domain.ThemeDark, loaded.Config.Defaults.Theme)
	})

	t.Run("Save Isolates Caller Mutations", func(t *testing.T) {
		snap := newSnapshot()
		require.NoError(t, store.Save(ctx, key, snap))

		snap.Toasts[0].Title = "mutated"

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "Saved!", loaded.Toasts[0].Title)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, newSnapshot()))

		err := store.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound, "Load after Delete should return ErrSnapshotNotFound")
	})
}
