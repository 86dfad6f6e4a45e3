/*
Package fluix is a headless toast engine: it owns the lifecycle, timing and motion of transient notifications and leaves rendering to whoever consumes its snapshots.

# Concept

A Toaster wraps a lifecycle machine (pkg/machine) holding an observable store (pkg/store) of immutable snapshots. Applications call Show, Success, Error and friends; renderers subscribe to the store, read each snapshot and apply the attribute contract of pkg/attrs to whatever surface they draw on. Motion curves for enter/exit animations come from the spring solver in pkg/spring.

# Key Features

  - Same-id replacement: toasts created without an id share one slot, so repeated notifications swap content in place.
  - Timed exit: Dismiss flags a toast as exiting and removes it once the exit animation has had time to play.
  - Promise binding: Promise shows a loading toast for a running task and turns it into a success or error toast when the task settles.
  - Adapters: HTTP (with SSE and WebSocket streams), MCP tools, Redis persistence and pub/sub.

# Usage

	package main

	import (
		"context"
		"fmt"

		"github.com/aretw0/fluix"
		"github.com/aretw0/fluix/pkg/domain"
		"github.com/aretw0/fluix/pkg/machine"
	)

	func main() {
		t := fluix.New(fluix.WithMachineOptions(machine.WithAutoDismiss(true)))
		defer t.Destroy()

		t.Subscribe(func() {
			fmt.Println(len(t.Snapshot().Toasts), "toasts")
		})

		id := t.Success(domain.Options{Title: "Saved!"})
		t.Dismiss(id)

		f := fluix.Promise(context.Background(), t,
			func(ctx context.Context) (string, error) { return "ok", nil },
			fluix.PromiseOptions[string]{
				Loading: domain.Options{Title: "Working"},
				Success: func(v string) domain.Options { return domain.Options{Title: v} },
			})
		_, _ = f.Wait(context.Background())
	}

For a shared application-wide instance use a Registry and thread the Toaster through contexts with WithToaster and FromContext.
*/
package fluix
