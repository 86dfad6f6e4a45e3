/*
Package domain contains the core models of the fluix toast engine.

It defines the vocabulary shared by the lifecycle machine, the attribute
contract and every adapter. The package is pure: no I/O, no timers, no
persistence.

# Key Entities

  - Options: caller-supplied toast fields, merged over configuration defaults.
  - Item: a resolved, immutable toast as seen by renderers.
  - Config: toaster configuration (position, layout, offset, defaults).
  - Snapshot: the complete machine state (ordered items plus configuration).
  - LifecycleHooks: observability callbacks fired on every transition.
*/
package domain
