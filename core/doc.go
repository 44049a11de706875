// Package core implements the bipartite-graph data structure behind an
// Online Codes decoder: message, auxiliary and check nodes linked by
// unsolved-edge-counted up/down adjacency, plus the XOR-list bookkeeping
// that records, for every solved node, which check blocks must be XORed
// together to recover it.
//
// The Graph is a dense, integer-indexed structure, not a map-keyed one:
// node ids occupy three disjoint, ordered ranges —
//
//	[0, mblocks)            message nodes   (unsolved until recovered)
//	[mblocks, coblocks)     auxiliary nodes (unsolved until recovered)
//	[coblocks, ...)         check nodes     (always solved on arrival)
//
// "down" always means strictly lower id, "up" strictly higher id; this
// ordering is load-bearing and never mutated after construction.
//
// Why a columnar Graph and not a map of structs?
//
//   - The decoder runs one bounded array scan per check-block arrival and
//     one FIFO drain per resolve call; columnar slices (solved[], u[],
//     down[][], xorList[][]) keep both on a hot, cache-friendly path.
//   - Up-edges are created and deleted one at a time as the arrival stream
//     plays out, so they live on a pool-backed singly-linked list
//     (pool.go) instead of a slice that would need repeated compaction.
//   - Down-edges are read far more than they are mutated (every resolver
//     dispatch rescans them against solved[]), so they live in a dense,
//     fixed-capacity array (edges.go). Entries are never deleted one by
//     one: solved neighbours stay in the array until decommissioning
//     drops it whole.
//
// Concurrency: unlike a general-purpose graph library, this Graph is
// deliberately NOT safe for concurrent use. Per the decoder's cooperative,
// single-threaded scheduling model, all mutation happens on the caller's
// goroutine between resolve calls, and the process-wide node-pool
// free-list (pool.go) is shared, unlocked state across every live Graph.
// A caller that needs concurrent decoders must either keep every Graph on
// the shared pool on one goroutine or construct each with WithPrivatePool.
//
// Errors:
//
//	ErrAlloc      - declared for allocation failure; no core operation
//	                returns it.
//	ErrInvariant  - an asserted invariant was violated; Graph state is
//	                undefined afterward and the Graph must be discarded.
package core
