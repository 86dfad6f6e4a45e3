package fluix

import (
	"log/slog"

	"github.com/aretw0/fluix/internal/logging"
	"github.com/aretw0/fluix/pkg/domain"
	"github.com/aretw0/fluix/pkg/machine"
)

// Toaster is the high-level entry point of the library.
// It wraps a lifecycle machine with the state-pinning shorthands
// applications call directly.
type Toaster struct {
	machine     *machine.Machine
	machineOpts []machine.Option
	logger      *slog.Logger
}

// Option defines a functional option for configuring the Toaster.
type Option func(*Toaster)

// WithMachine wraps an existing machine instead of creating one.
func WithMachine(m *machine.Machine) Option {
	return func(t *Toaster) {
		t.machine = m
	}
}

// WithMachineOptions passes options to the machine the Toaster creates.
// Ignored when WithMachine is used.
func WithMachineOptions(opts ...machine.Option) Option {
	return func(t *Toaster) {
		t.machineOpts = append(t.machineOpts, opts...)
	}
}

// WithLogger sets a custom structured logger. It is handed to the machine too.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Toaster) {
		t.logger = logger
	}
}

// New creates a Toaster.
func New(opts ...Option) *Toaster {
	t := &Toaster{}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = logging.NewNop()
	}
	if t.machine == nil {
		mopts := append([]machine.Option{machine.WithLogger(t.logger)}, t.machineOpts...)
		t.machine = machine.New(mopts...)
	}
	return t
}

// Machine returns the underlying lifecycle machine.
func (t *Toaster) Machine() *machine.Machine { return t.machine }

// Snapshot returns the current state.
func (t *Toaster) Snapshot() *domain.Snapshot { return t.machine.Snapshot() }

// Subscribe registers a change listener and returns its unsubscribe function.
func (t *Toaster) Subscribe(listener func()) func() { return t.machine.Subscribe(listener) }

// Show creates a toast with explicit options and returns its id.
func (t *Toaster) Show(opts domain.Options) string {
	return t.machine.Create(opts)
}

// Success shows a toast in the success state.
func (t *Toaster) Success(opts domain.Options) string {
	return t.show(opts, domain.StateSuccess)
}

// Error shows a toast in the error state.
func (t *Toaster) Error(opts domain.Options) string {
	return t.show(opts, domain.StateError)
}

// Warning shows a toast in the warning state.
func (t *Toaster) Warning(opts domain.Options) string {
	return t.show(opts, domain.StateWarning)
}

// Info shows a toast in the info state.
func (t *Toaster) Info(opts domain.Options) string {
	return t.show(opts, domain.StateInfo)
}

// Action shows a toast in the action state, usually with a button.
func (t *Toaster) Action(opts domain.Options) string {
	return t.show(opts, domain.StateAction)
}

func (t *Toaster) show(opts domain.Options, state domain.State) string {
	opts.State = state
	return t.machine.Create(opts)
}

// Dismiss starts the exit of the toast with the given id.
func (t *Toaster) Dismiss(id string) { t.machine.Dismiss(id) }

// Clear removes all toasts, or only those at position.
func (t *Toaster) Clear(position ...domain.Position) { t.machine.Clear(position...) }

// Configure updates the toaster configuration.
func (t *Toaster) Configure(cfg domain.Config) { t.machine.Configure(cfg) }

// Destroy cancels every pending timer of the underlying machine.
func (t *Toaster) Destroy() { t.machine.Destroy() }
