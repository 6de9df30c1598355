// Package customerrors defines common errors for the index implementations
// to use.
package customerrors

import (
	"errors"
)

var (
	// ErrKeyNotFound may be used by callers that want to turn an absent
	// lookup result into an error.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidOrder is returned when a tree is configured with an order
	// too small to split and merge nodes.
	ErrInvalidOrder = errors.New("invalid order")

	// ErrCorrupted reports a broken structural invariant. The tree panics
	// with it during mutation and returns it from consistency checks.
	ErrCorrupted = errors.New("index corrupted")
)
