package fluix

import (
	"context"
	"log/slog"

	"github.com/aretw0/fluix/internal/logging"
	"github.com/aretw0/fluix/pkg/domain"
	"github.com/aretw0/fluix/pkg/machine"
	"github.com/aretw0/fluix/pkg/ports"
)

// Sink receives snapshots pushed by Mirror.
type Sink func(context.Context, *domain.Snapshot) error

// SaveTo returns a sink saving every snapshot under key.
func SaveTo(store ports.SnapshotStore, key string) Sink {
	return func(ctx context.Context, s *domain.Snapshot) error {
		return store.Save(ctx, key, s)
	}
}

// Mirror pushes the current snapshot to every sink, then again after each
// change, until ctx is done. Changes arriving while a push is in flight are
// coalesced: only the latest snapshot is sent. Sink errors are logged and do
// not stop the mirror.
func Mirror(ctx context.Context, m *machine.Machine, logger *slog.Logger, sinks ...Sink) {
	if logger == nil {
		logger = logging.NewNop()
	}
	changed := make(chan struct{}, 1)
	unsubscribe := m.Subscribe(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	push := func() {
		snap := m.Snapshot()
		for _, sink := range sinks {
			if err := sink(ctx, snap); err != nil && ctx.Err() == nil {
				logger.Warn("mirror sink failed", "err", err)
			}
		}
	}

	push()
	for {
		select {
		case <-ctx.Done():
			return
		case <-changed:
			push()
		}
	}
}
