package store

import "errors"

var (
	// ErrNotFound is returned when a record id does not resolve.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateID is returned when a create would reuse an existing id.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrTerminalStatus is returned when transitioning an appointment whose
	// status is no longer pending.
	ErrTerminalStatus = errors.New("appointment status is terminal")
	// ErrInvalidTransition is returned for a transition target other than
	// confirmed or cancelled.
	ErrInvalidTransition = errors.New("invalid status transition")
)
