package store

import "errors"

// Sentinel errors for the store package.
var (
	// ErrRunNotFound indicates a requested run ID has no recorded rows.
	ErrRunNotFound = errors.New("store: run not found")

	// ErrEmptyBatch indicates Record was called with an empty snapshot batch.
	ErrEmptyBatch = errors.New("store: empty snapshot batch")
)
