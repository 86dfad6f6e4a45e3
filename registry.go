package fluix

import (
	"context"
	"sync"
)

// Registry hands out one shared Toaster per application. The Toaster is
// built on first use; Reset destroys it so the next call starts fresh.
type Registry struct {
	mu      sync.Mutex
	opts    []Option
	toaster *Toaster
}

// NewRegistry creates a registry building its Toaster with opts.
func NewRegistry(opts ...Option) *Registry {
	return &Registry{opts: opts}
}

// Toaster returns the shared Toaster, creating it if needed.
func (r *Registry) Toaster() *Toaster {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.toaster == nil {
		r.toaster = New(r.opts...)
	}
	return r.toaster
}

// Reset destroys the current Toaster, cancelling its timers.
func (r *Registry) Reset() {
	r.mu.Lock()
	t := r.toaster
	r.toaster = nil
	r.mu.Unlock()

	if t != nil {
		t.Destroy()
	}
}

type toasterKey struct{}

// WithToaster returns a copy of ctx carrying t.
func WithToaster(ctx context.Context, t *Toaster) context.Context {
	return context.WithValue(ctx, toasterKey{}, t)
}

// FromContext returns the Toaster stored by WithToaster.
func FromContext(ctx context.Context) (*Toaster, bool) {
	t, ok := ctx.Value(toasterKey{}).(*Toaster)
	return t, ok && t != nil
}
