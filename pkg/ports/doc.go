/*
Package ports defines the driven ports (interfaces) of the fluix engine.

These interfaces decouple the lifecycle machine from wall-clock time and from
storage backends.

# Key Interfaces

  - Scheduler / Timer: delayed callbacks (realtime in production, manual in tests).
  - SnapshotStore: persistence of machine snapshots (memory, Redis).
*/
package ports
