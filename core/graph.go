// File: graph.go
// Role: §4.E construction, §4.F auxiliary wiring, §4.G check-block
// ingestion and §4.H the resolver — the algorithmic core, kept as Graph
// methods rather than a separate package because every step reaches
// directly into the private arrays above (down/up/xorList/u/solved).
//
// Determinism: every method here is a pure function of the sequence of
// calls made to it; nothing reads wall-clock time or randomness.

package core

import "fmt"

// GraphOption configures a Graph at construction. Mirrors the functional-
// option pattern also used by decoder.Option.
type GraphOption func(*graphConfig)

type graphConfig struct {
	privatePool bool
}

// WithPrivatePool gives the Graph its own nodePool instead of the shared,
// process-wide one. Use this when multiple decoders run on independent
// goroutines; the shared pool's free-list is not safe for concurrent use
// (see pool.go). A Graph built this way pays its own allocation cost
// instead of amortising it across the process.
func WithPrivatePool() GraphOption {
	return func(c *graphConfig) { c.privatePool = true }
}

// NewGraph allocates a Graph for mblocks message nodes and ablocks
// auxiliary nodes, with room for up to capacity nodes total (mblocks +
// ablocks + the expected number of check blocks). capacity must be at
// least mblocks+ablocks; callers (the decoder package) are responsible
// for translating a violation of that into a returned ConfigError before
// ever reaching here — NewGraph treats it as a programming error.
func NewGraph(mblocks, ablocks, capacity int, opts ...GraphOption) *Graph {
	coblocks := mblocks + ablocks
	if capacity < coblocks {
		invariantf(0, "new_graph: capacity %d smaller than mblocks+ablocks %d", capacity, coblocks)
	}

	cfg := graphConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		mblocks:              mblocks,
		ablocks:              ablocks,
		coblocks:             coblocks,
		nodes:                coblocks,
		unsolvedMessageCount: mblocks,

		solved:  make([]bool, capacity),
		u:       make([]int, capacity),
		down:    make([][]int, capacity),
		downLen: make([]int, capacity),
		up:      make([]*cell, capacity),
		xorList: make([][]int, capacity),
	}

	if cfg.privatePool {
		g.pool = newPrivatePool()
	} else {
		g.pool = acquirePool()
	}
	g.pending = fifo{pool: g.pool}

	if mblocks == 0 {
		g.done = true
	}

	return g
}

// Close releases the Graph's hold on its node pool. Callers that built a
// Graph with WithPrivatePool may skip this; it matters only for the
// shared, refcounted pool.
func (g *Graph) Close() {
	g.pool.release()
}

// WireAuxiliary installs the auxiliary mapping produced at construction
// time (§4.F steps 2-4): for each auxiliary node a and each message
// neighbour m in auxMapping[a], records an up-edge(a, m) and accumulates
// down[a]. auxMapping must have exactly ablocks entries, each holding
// message ids in [0, mblocks); validating that shape against the caller's
// intent (a malformed mapping is a ConfigError) is the decoder package's
// job, not this one's — WireAuxiliary only asserts the invariants it
// depends on internally.
func (g *Graph) WireAuxiliary(auxMapping [][]int) {
	if len(auxMapping) != g.ablocks {
		invariantf(0, "wire_auxiliary: got %d entries, want %d", len(auxMapping), g.ablocks)
	}

	for a, msgs := range auxMapping {
		node := g.mblocks + a
		ids := make([]int, len(msgs))
		copy(ids, msgs)

		g.setDown(node, ids)
		g.u[node] = len(ids)
		for _, m := range msgs {
			if g.Kind(m) != KindMessage {
				invariantf(node, "wire_auxiliary: neighbour %d is not a message node", m)
			}
			g.addUpEdge(node, m)
		}
	}
}

// NewCheckNode ingests a received check block's composite neighbour list
// (§4.G). It assigns the next node id, partitions vEdges live against
// solved[] into the already-solved set S (folded straight into the new
// node's xor-list) and the unsolved set U (recorded as down[node], with a
// fresh up-edge back from each member), and enqueues node for resolution.
//
// Returns ErrCapacity if the Graph's pre-sized node space is exhausted.
func (g *Graph) NewCheckNode(vEdges []int) (int, error) {
	if g.nodes >= len(g.solved) {
		return 0, fmt.Errorf("core: new_check_node: %w", ErrCapacity)
	}

	node := g.nodes
	g.nodes++

	xl := make([]int, 0, len(vEdges)+1)
	xl = append(xl, node)

	unsolved := make([]int, 0, len(vEdges))
	for _, v := range vEdges {
		if g.solved[v] {
			xl = append(xl, v)
		} else {
			g.addUpEdge(node, v)
			unsolved = append(unsolved, v)
		}
	}

	g.markSolved(node)
	g.setXORList(node, xl)
	g.setDown(node, unsolved)
	g.u[node] = len(unsolved)

	g.pending.push(node)

	return node, nil
}

// Resolve drains the pending queue, applying the propagation and
// auxiliary rules wherever they fire, until either the queue empties or
// stepLimit newly-solved nodes have been emitted (stepLimit <= 0 means
// unbounded — drain fully). The pending queue persists across calls, so
// a bounded call picks up exactly where the previous one left off
// ("stepping mode", §4.H).
//
// Resolve panics with *InvariantError if it detects a violated invariant
// (a message node dispatched, a missing edge, a double-solve); the Graph
// must not be used again afterward. Callers that want a returned error
// instead of a panic should recover at their own API boundary (see
// decoder.Resolve).
func (g *Graph) Resolve(stepLimit int) (done bool, newlySolved []int) {
	for !g.pending.empty() {
		node, _ := g.pending.pop()
		if id, ok := g.dispatch(node); ok {
			newlySolved = append(newlySolved, id)
			if stepLimit > 0 && len(newlySolved) >= stepLimit {
				break
			}
		}
	}

	return g.done, newlySolved
}

// dispatch applies whichever rule (if any) fires for node `from`, given
// its current u[from] and solved[from]. Returns the id of the node newly
// solved by this dispatch, if any.
func (g *Graph) dispatch(from int) (solvedID int, ok bool) {
	if g.Kind(from) == KindMessage {
		invariantf(from, "dispatch: message nodes are never enqueued")
	}
	if g.solved[from] && g.downLen[from] == 0 {
		// Stale duplicate entry: from was already decommissioned (or
		// arrived with no unsolved neighbour). Nothing left to do.
		return 0, false
	}

	switch u := g.u[from]; {
	case u == 0 && g.Kind(from) == KindAuxiliary && !g.solved[from]:
		return g.applyAuxRule(from), true

	case u == 0:
		// Redundant re-visit: a check node or an already-solved auxiliary
		// whose every down-neighbour is solved. Nothing left to learn.
		g.decommission(from, -1)
		return 0, false

	case u == 1 && g.solved[from]:
		return g.applyPropagation(from), true

	default:
		// u == 1 and from is an unsolved auxiliary (needs u==0 first), or
		// u >= 2: not yet actionable. Cascade will re-enqueue from later.
		return 0, false
	}
}

// applyAuxRule solves an unsolved auxiliary node whose every down-
// neighbour is already solved: xor_list[from] becomes down[from] itself
// (§4.H aux rule).
func (g *Graph) applyAuxRule(from int) int {
	ids := g.downNeighbours(from)
	frozen := make([]int, len(ids))
	copy(frozen, ids)

	g.setXORList(from, frozen)
	g.markSolved(from)
	g.decommission(from, -1)
	g.cascade(from)

	return from
}

// applyPropagation solves the unique unsolved down-neighbour `to` of an
// already-solved `from` with u[from]==1 (§4.H propagation rule):
// xor_list[to] = xor_list[from] ⧺ S_from. The from -> to up-edge is
// removed before cascading on to, so cascade(to) does not re-decrement
// the retiring from.
func (g *Graph) applyPropagation(from int) int {
	to, s := g.partitionDown(from)

	list := append(g.RawXORList(from), s...)
	g.setXORList(to, list)
	g.markSolved(to)

	g.removeUpEdge(from, to)
	g.decommission(from, to)

	if g.Kind(to) == KindAuxiliary {
		g.pending.push(to)
	}
	g.cascade(to)

	return to
}

// partitionDown scans down[from] once, returning the single unsolved
// neighbour `to` and the already-solved remainder `s`, in scan order.
// Panics if the scan does not find exactly one unsolved neighbour; u[from]
// having reported 1 is the invariant this checks.
func (g *Graph) partitionDown(from int) (to int, s []int) {
	to = -1
	for _, m := range g.downNeighbours(from) {
		if g.solved[m] {
			s = append(s, m)
			continue
		}
		if to != -1 {
			invariantf(from, "propagation: more than one unsolved down-neighbour")
		}
		to = m
	}
	if to == -1 {
		invariantf(from, "propagation: u[from]==1 but no unsolved down-neighbour found")
	}

	return to, s
}

// markSolved sets solved[n] and, for message nodes, decrements the
// unsolved-message counter — flipping done once it reaches zero.
func (g *Graph) markSolved(n int) {
	if g.solved[n] {
		invariantf(n, "mark_solved: node already solved")
	}
	g.solved[n] = true

	if g.Kind(n) == KindMessage {
		g.unsolvedMessageCount--
		if g.unsolvedMessageCount == 0 {
			g.done = true
		}
	}
}

// decommission drops from's down array and removes its up-edge to every
// remaining down-neighbour except exceptTo (pass -1 to remove all of
// them). Reclaims pool cells for neighbours that will never be consulted
// through from again.
func (g *Graph) decommission(from, exceptTo int) {
	for _, m := range g.downNeighbours(from) {
		if m == exceptTo {
			continue
		}
		g.removeUpEdge(from, m)
	}
	g.downLen[from] = 0
	g.down[from] = nil
}

// cascade notifies every node that depends on the newly-solved `to`:
// decrements u[h] for each h in up[to], re-enqueueing h once u[h] drops
// below 2 so the resolver gives it another look.
func (g *Graph) cascade(to int) {
	for _, h := range g.upNeighbours(to) {
		g.u[h]--
		if g.u[h] < 2 {
			g.pending.push(h)
		}
	}
}
