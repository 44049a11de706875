// File: errors.go
// Role: sentinel errors for the decoder package's external interface.
// Error policy mirrors dijkstra/types.go: sentinels are package-level
// vars; Create wraps them with %w for context, callers branch with
// errors.Is.

package decoder

import "errors"

// ErrConfig indicates an argument is structurally invalid: from Create,
// mblocks/ablocks below 1, fudge not greater than 1.0, an auxiliary
// mapping of the wrong length, a neighbour id outside [0, mblocks), or a
// node space smaller than mblocks+ablocks; from IngestCheckBlock, a
// neighbour id outside [0, mblocks+ablocks); from XORList, a node that
// is out of range or not solved.
var ErrConfig = errors.New("decoder: invalid configuration")

// ErrCapacity indicates a check block arrived after the pre-sized node
// space was exhausted. Raise the node space (WithNodeSpace) and start a
// new Decoder; this one cannot accept more check blocks.
var ErrCapacity = errors.New("decoder: node space exhausted")

// ErrBroken indicates a prior call already surfaced an *core.InvariantError
// and the Decoder's internal state is no longer trustworthy.
var ErrBroken = errors.New("decoder: decoder state is undefined after a prior invariant violation")
