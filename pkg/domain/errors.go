package domain

import "errors"

// ErrSnapshotNotFound is returned when no snapshot is stored under a key.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// ErrInvalidPosition is returned by adapters when a position string is not one of Positions.
var ErrInvalidPosition = errors.New("invalid position")

// ErrInvalidLayout is returned for layouts other than stack and notch.
var ErrInvalidLayout = errors.New("invalid layout")
