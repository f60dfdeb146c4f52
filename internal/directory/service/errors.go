package service

import "errors"

var (
	// ErrSnapshotUnavailable means the snapshot could not be read or parsed.
	// It is recoverable: callers answer with a "service unavailable" response.
	ErrSnapshotUnavailable = errors.New("fund directory snapshot unavailable")

	// ErrManagerNotFound means no fund record matches the requested firm slug.
	ErrManagerNotFound = errors.New("manager not found")
)
