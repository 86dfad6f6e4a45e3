/*
Package store provides a minimal observable state container.

A Store holds one immutable value of any comparable type (typically a pointer
to an immutable struct) and notifies subscribers synchronously on every
change:

	s := store.New(&State{})
	unsubscribe := s.Subscribe(func() {
		render(s.Snapshot())
	})
	defer unsubscribe()

	s.Update(func(prev *State) *State {
		next := *prev
		next.Count++
		return &next
	})

Returning the previous value from an Update function is a no-op: no
notification fires and the snapshot is unchanged. There is no batching and no
asynchronous scheduling; listener order is unspecified.
*/
package store
