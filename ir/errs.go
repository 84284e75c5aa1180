package ir

import "errors"

var (
	// ErrNotFound is returned when removing a node that is not in the
	// collection.
	ErrNotFound = errors.New("node not found")
	// ErrCycle is returned when adding a node beneath itself or one of its
	// descendants.
	ErrCycle   = errors.New("node would become its own ancestor")
	ErrNilNode = errors.New("nil node")
	ErrIndex   = errors.New("index out of range")
)
