package http

import (
	"log/slog"
	"sync"
)

// StreamManager fans encoded snapshots out to every connected stream client.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[chan<- []byte]struct{}
	logger      *slog.Logger
}

// NewStreamManager creates an empty StreamManager.
func NewStreamManager(logger *slog.Logger) *StreamManager {
	return &StreamManager{
		subscribers: make(map[chan<- []byte]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a new client. The returned function unregisters it and
// closes the channel; it is safe to call more than once.
func (sm *StreamManager) Subscribe() (<-chan []byte, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan []byte, 10)
	sm.subscribers[ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if _, ok := sm.subscribers[ch]; ok {
			delete(sm.subscribers, ch)
			close(ch)
		}
	}
}

// Len returns the number of connected clients.
func (sm *StreamManager) Len() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.subscribers)
}

// Broadcast sends msg to every client without blocking. Clients with a full
// buffer miss the message; the next snapshot supersedes it anyway.
func (sm *StreamManager) Broadcast(msg []byte) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for ch := range sm.subscribers {
		select {
		case ch <- msg:
		default:
			sm.logger.Warn("stream client buffer full, dropping snapshot")
		}
	}
}
