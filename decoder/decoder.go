// File: decoder.go
// Role: §6 — the four external operations (Create, IngestCheckBlock,
// Resolve, XORList), each validating its own arguments before reaching
// into core.Graph and recovering any *core.InvariantError at this
// boundary so the package stays panic-free from the caller's side.

package decoder

import (
	"errors"
	"fmt"

	"github.com/ratcode/oncode/core"
)

// Decoder wraps a core.Graph with the validated external interface. The
// zero value is not usable; obtain one from Create.
type Decoder struct {
	g       *core.Graph
	mblocks int
	ablocks int
	broken  bool
}

// Create builds a Decoder for mblocks message blocks and ablocks
// auxiliary blocks, wired according to auxMapping (auxMapping[a] lists
// the message indices combined into auxiliary block a). fudge is the
// safety multiplier §4.F's expected-check-space formula applies over the
// codec's (1 + q·ε) overhead term; it must be greater than 1.0.
//
// Returns ErrConfig if mblocks or ablocks is smaller than 1, if fudge is
// not greater than 1.0, if auxMapping does not have exactly ablocks
// entries, or if any entry references a message index outside
// [0, mblocks).
func Create(mblocks, ablocks int, auxMapping [][]int, fudge float64, opts ...Option) (d *Decoder, err error) {
	if mblocks < 1 || ablocks < 1 {
		return nil, fmt.Errorf("decoder: create: %w: mblocks=%d ablocks=%d must both be at least 1", ErrConfig, mblocks, ablocks)
	}
	if fudge <= 1.0 {
		return nil, fmt.Errorf("decoder: create: %w: fudge=%v must be greater than 1.0", ErrConfig, fudge)
	}
	if len(auxMapping) != ablocks {
		return nil, fmt.Errorf("decoder: create: %w: auxMapping has %d entries, want %d", ErrConfig, len(auxMapping), ablocks)
	}
	for a, msgs := range auxMapping {
		for _, m := range msgs {
			if m < 0 || m >= mblocks {
				return nil, fmt.Errorf("decoder: create: %w: auxiliary %d references out-of-range message %d", ErrConfig, a, m)
			}
		}
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.nodeSpace == 0 {
		cfg.nodeSpace = defaultNodeSpace(mblocks, ablocks, fudge, auxMapping, cfg)
	}
	if cfg.nodeSpace < mblocks+ablocks {
		return nil, fmt.Errorf("decoder: create: %w: node space %d smaller than mblocks+ablocks %d", ErrConfig, cfg.nodeSpace, mblocks+ablocks)
	}

	defer recoverInvariant(&err)

	var graphOpts []core.GraphOption
	if cfg.privatePool {
		graphOpts = append(graphOpts, core.WithPrivatePool())
	}
	g := core.NewGraph(mblocks, ablocks, cfg.nodeSpace, graphOpts...)
	g.WireAuxiliary(auxMapping)

	return &Decoder{g: g, mblocks: mblocks, ablocks: ablocks}, nil
}

// IngestCheckBlock records a received check block whose composite
// neighbour list is vEdges (message or auxiliary node ids), enqueuing it
// for the next Resolve call. Returns the new check node's id.
//
// Returns ErrCapacity if the pre-sized node space is exhausted, ErrConfig
// if any id in vEdges is out of range, or ErrBroken if a prior call left
// the Decoder's state undefined.
func (d *Decoder) IngestCheckBlock(vEdges []int) (id int, err error) {
	if d.broken {
		return 0, ErrBroken
	}
	for _, v := range vEdges {
		if v < 0 || v >= d.g.CoBlocks() {
			return 0, fmt.Errorf("decoder: ingest_check_block: %w: neighbour %d out of range", ErrConfig, v)
		}
	}

	defer recoverInvariant(&err)
	defer d.markBrokenOnPanic()

	id, cerr := d.g.NewCheckNode(vEdges)
	if cerr != nil {
		if errors.Is(cerr, core.ErrCapacity) {
			return 0, fmt.Errorf("decoder: ingest_check_block: %w", ErrCapacity)
		}
		return 0, cerr
	}

	return id, nil
}

// Resolve drains the pending queue, applying the propagation and
// auxiliary rules until either it empties or stepLimit nodes have been
// newly solved (stepLimit <= 0 drains fully). The queue persists across
// calls, so repeated bounded calls make steady, bounded-per-call progress
// ("stepping mode").
//
// Returns ErrBroken if a prior call already surfaced an invariant
// violation.
func (d *Decoder) Resolve(stepLimit int) (done bool, newlySolved []int, err error) {
	if d.broken {
		return false, nil, ErrBroken
	}

	defer recoverInvariant(&err)
	defer d.markBrokenOnPanic()

	done, newlySolved = d.g.Resolve(stepLimit)

	return done, newlySolved, nil
}

// XORList returns node n's recorded xor-list: the set of ids whose XOR
// equals n's payload, in original append order with duplicates preserved.
// If expandAux is true, every composite (message or auxiliary) entry is
// recursively replaced by its own xor-list, leaving only check-node ids.
//
// Returns ErrConfig if n is out of range or not yet solved, or ErrBroken
// if a prior call left the Decoder's state undefined.
func (d *Decoder) XORList(n int, expandAux bool) (list []int, err error) {
	if d.broken {
		return nil, ErrBroken
	}
	if n < 0 || n >= d.g.NodeCount() {
		return nil, fmt.Errorf("decoder: xor_list: %w: node %d out of range", ErrConfig, n)
	}
	if !d.g.Solved(n) {
		return nil, fmt.Errorf("decoder: xor_list: %w: node %d is not solved", ErrConfig, n)
	}

	defer recoverInvariant(&err)

	return d.g.ExpandXORList(n, expandAux), nil
}

// Done reports whether every message block has been recovered.
func (d *Decoder) Done() bool { return d.g.Done() }

// Broken reports whether a prior call already surfaced an invariant
// violation; once true, every further call returns ErrBroken.
func (d *Decoder) Broken() bool { return d.broken }

// Close releases the underlying Graph's hold on its node pool.
func (d *Decoder) Close() { d.g.Close() }

// markBrokenOnPanic flips d.broken before recoverInvariant (deferred
// ahead of it, so it runs after) converts the panic into err. Deferred
// funcs run LIFO, so this must be deferred after recoverInvariant for
// the ordering to hold — see each caller above.
func (d *Decoder) markBrokenOnPanic() {
	if r := recover(); r != nil {
		d.broken = true
		panic(r) // re-panic; the next deferred recoverInvariant converts it
	}
}

// recoverInvariant recovers a *core.InvariantError panic and assigns it
// to *errp, wrapped as ErrInvariant-compatible via errors.Is. Any other
// panic value is re-raised: only core's own invariant-violation class is
// meant to cross this boundary as a returned error.
func recoverInvariant(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	ie, ok := r.(*core.InvariantError)
	if !ok {
		panic(r)
	}
	*errp = fmt.Errorf("decoder: %w", ie)
}
