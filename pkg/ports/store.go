package ports

import (
	"context"

	"github.com/aretw0/fluix/pkg/domain"
)

// SnapshotStore persists machine snapshots so another process (or a restart)
// can observe or resume a toaster.
type SnapshotStore interface {
	// Save persists the snapshot under key, replacing any previous one.
	Save(ctx context.Context, key string, snapshot *domain.Snapshot) error

	// Load retrieves the snapshot stored under key.
	// Returns domain.ErrSnapshotNotFound if there is none.
	Load(ctx context.Context, key string) (*domain.Snapshot, error)

	// Delete removes the snapshot stored under key.
	Delete(ctx context.Context, key string) error
}
