// File: errors.go
// Role: sentinel errors for the core package, plus the InvariantError type
// used to carry debugging context out of a recovered invariant panic.
//
// Error policy (mirrors builder/errors.go): sentinels are package-level
// vars, never wrapped with formatted strings at definition site; callers
// branch with errors.Is. Implementations attach context via %w.

package core

import (
	"errors"
	"fmt"
)

// ErrAlloc names the allocation-failure class (CapacityError-adjacent; see
// decoder.ErrCapacity for the pre-sizing failure one layer up). No
// function in this module returns it: the node pool and the Graph's
// arrays allocate through the Go runtime, which does not report failure
// as an error.
var ErrAlloc = errors.New("core: allocation failed")

// ErrCapacity indicates the number of ingested check blocks has exceeded
// the node space the Graph was constructed with.
var ErrCapacity = errors.New("core: node space exhausted")

// ErrInvariant indicates an asserted invariant was violated: re-solving a
// solved node, deleting a non-existent edge, or dispatching a message node
// through the resolver. Per spec, this is a programming-error class: the
// Graph's state is undefined afterward and must not be reused.
var ErrInvariant = errors.New("core: invariant violated")

// InvariantError carries the node id and a human-readable reason for an
// ErrInvariant failure, so callers (and tests) can tell which assertion
// fired without parsing a message string.
type InvariantError struct {
	Node   int
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("core: invariant violated at node %d: %s", e.Node, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvariant) succeed for InvariantError values.
func (e *InvariantError) Unwrap() error { return ErrInvariant }

// invariantf panics with an *InvariantError. Dispatch-path callers (decoder
// package) recover this at the API boundary and convert it to a returned
// error; it is never meant to cross into caller code as a raw panic.
func invariantf(node int, format string, args ...interface{}) {
	panic(&InvariantError{Node: node, Reason: fmt.Sprintf(format, args...)})
}
