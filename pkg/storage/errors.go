package storage

import "masthead/pkg/serrors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyStored is returned when an instance is stored twice.
	ErrAlreadyStored = serrors.With(serrors.ErrConflict, "already stored")
	// ErrNilEntity is returned when a nil entity is passed to a Store method.
	ErrNilEntity = serrors.With(serrors.ErrInvalidReference, "nil entity")
	// ErrClosed is returned by every operation after Close.
	ErrClosed = serrors.With(serrors.ErrInternal, "storage closed")
)
