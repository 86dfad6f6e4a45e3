// Package redis persists and broadcasts toaster snapshots through Redis.
//
// Store implements ports.SnapshotStore with plain keys plus a sorted-set
// index for listing. Publisher fans snapshots out over pub/sub.
package redis
