// Package oncode is your in-memory solver for rateless (fountain) erasure
// codes: feed it check blocks as they arrive, and it tells you which
// message blocks it has recovered so far.
//
// 🚀 What is oncode?
//
//	A dependency-light decoder core for Online Codes, bringing together:
//
//	  • A bipartite solver graph: message, auxiliary and check nodes linked
//	    by up/down edges, solved incrementally as check blocks arrive
//	  • A pooled node allocator: process-wide or private, so short-lived
//	    decode sessions don't pressure the garbage collector
//	  • A reference codec + blockstore: PRNG-driven neighbour selection and
//	    padding-aware XOR, enough to round-trip a message end to end in tests
//
// ✨ Why choose oncode?
//
//   - Incremental    — Resolve drains whatever the latest check block
//     unlocked; call it once per arrival or let it cascade to completion
//   - Deterministic  — no wall-clock reads, no randomness in the solver
//     itself; replaying the same check blocks in the same order always
//     solves the same nodes in the same order
//   - Pooled         — node-pool allocation keeps repeated decode sessions
//     cheap; opt into a private pool when you need isolation instead
//
// Under the hood, everything is organized under four subpackages:
//
//	core/       — node id space, node-pool allocator, edge store, the
//	              bipartite graph and its resolver (§4.A-H)
//	decoder/    — the external interface: Create, IngestCheckBlock, Resolve,
//	              XORList, built on core.Graph
//	codec/      — PRNG-driven auxiliary mapping and check-neighbour-list
//	              generation, kept out of the decoding core on purpose
//	blockstore/ — payload storage and the physical XOR of block bytes, used
//	              by round-trip tests, never by codec or the decoder
//
// Quick shape of a decode session:
//
//	dec, _ := decoder.Create(mblocks, ablocks, auxMapping, fudge)
//	for !dec.Done() {
//	    id, _ := dec.IngestCheckBlock(neighbours)
//	    _, newlySolved, _ := dec.Resolve(0)
//	}
//
// See SPEC_FULL.md for the module layout and scope, and DESIGN.md for the
// solver's design decisions.
//
//	go get github.com/ratcode/oncode
package oncode
