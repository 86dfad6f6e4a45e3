package fluix

import (
	"context"
	"fmt"

	"github.com/aretw0/fluix/pkg/domain"
)

// PromiseOptions describe the toasts shown while a task runs and after it
// settles. Success and Action receive the task's value, Error its error.
// When Action is set it replaces Success.
type PromiseOptions[T any] struct {
	Loading  domain.Options
	Success  func(T) domain.Options
	Error    func(error) domain.Options
	Action   func(T) domain.Options
	Position domain.Position
}

// Static lifts a fixed option set into a transform ignoring its input.
func Static[T any](opts domain.Options) func(T) domain.Options {
	return func(T) domain.Options { return opts }
}

// Future is the result of a task bound to a toast.
type Future[T any] struct {
	id    string
	done  chan struct{}
	value T
	err   error
}

// ID returns the id of the toast tracking the task.
func (f *Future[T]) ID() string { return f.id }

// Done is closed once the task has settled and the toast was updated.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Wait blocks until the task settles or ctx is done. It returns exactly what
// the task returned.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Promise shows a persistent loading toast, runs task in its own goroutine
// and, once it settles, updates the same toast through the Success (or
// Action) transform or the Error transform. Without a matching transform
// the toast still moves to success or error with default options. A toast the user dismissed in the
// meantime is left alone. The returned Future settles exactly as the task
// did; panics in a transform are logged and never change the outcome.
func Promise[T any](ctx context.Context, t *Toaster, task func(context.Context) (T, error), opts PromiseOptions[T]) *Future[T] {
	loading := opts.Loading
	loading.State = domain.StateLoading
	loading.Duration = domain.DurationOf(domain.Persistent)
	if opts.Position != "" {
		loading.Position = opts.Position
	}

	f := &Future[T]{
		id:   t.Show(loading),
		done: make(chan struct{}),
	}

	go func() {
		defer close(f.done)
		f.value, f.err = run(ctx, task)
		t.settle(f.id, func() domain.Options {
			return opts.resolve(f.value, f.err)
		})
	}()

	return f
}

func run[T any](ctx context.Context, task func(context.Context) (T, error)) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return task(ctx)
}

// resolve picks the transform for the outcome and pins the matching state.
// A missing transform still settles the toast, with default options.
func (o PromiseOptions[T]) resolve(value T, err error) domain.Options {
	var (
		next  domain.Options
		state domain.State
	)
	switch {
	case err != nil:
		if o.Error != nil {
			next = o.Error(err)
		}
		state = domain.StateError
	case o.Action != nil:
		next, state = o.Action(value), domain.StateAction
	case o.Success != nil:
		next, state = o.Success(value), domain.StateSuccess
	default:
		state = domain.StateSuccess
	}
	next.State = state
	if next.Position == "" {
		next.Position = o.Position
	}
	return next
}

func (t *Toaster) settle(id string, resolve func() domain.Options) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error("promise transform panicked", "id", id, "panic", r)
		}
	}()
	next := resolve()
	next.ID = id
	t.machine.Update(id, next)
}
