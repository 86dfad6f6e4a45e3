package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/fluix/internal/logging"
	"github.com/aretw0/fluix/pkg/domain"
)

// DefaultChannel is the pub/sub channel snapshots are published on.
const DefaultChannel = "fluix:snapshots"

// Publisher broadcasts snapshots over Redis pub/sub so several processes can
// render the same toaster.
type Publisher struct {
	client  *backend.Client
	channel string
	logger  *slog.Logger
}

// PublisherOption configures a Publisher.
type PublisherOption func(*Publisher)

// WithChannel sets the pub/sub channel.
func WithChannel(channel string) PublisherOption {
	return func(p *Publisher) {
		p.channel = channel
	}
}

// WithPublisherLogger sets the logger used for dropped messages.
func WithPublisherLogger(logger *slog.Logger) PublisherOption {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// NewPublisher creates a publisher on client.
func NewPublisher(client *backend.Client, opts ...PublisherOption) *Publisher {
	p := &Publisher{
		client:  client,
		channel: DefaultChannel,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish sends the JSON form of snap to every subscriber.
func (p *Publisher) Publish(ctx context.Context, snap *domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish snapshot: %w", err)
	}
	return nil
}

// Subscribe returns a channel of decoded snapshots. The subscription is
// established before Subscribe returns and is closed when ctx is done.
// Malformed messages are logged and skipped.
func (p *Publisher) Subscribe(ctx context.Context) (<-chan *domain.Snapshot, error) {
	sub := p.client.Subscribe(ctx, p.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", p.channel, err)
	}

	out := make(chan *domain.Snapshot, 16)
	go func() {
		defer close(out)
		defer sub.Close()

		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var snap domain.Snapshot
				if err := json.Unmarshal([]byte(msg.Payload), &snap); err != nil {
					p.logger.Warn("dropping malformed snapshot", "channel", msg.Channel, "err", err)
					continue
				}
				select {
				case out <- &snap:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
