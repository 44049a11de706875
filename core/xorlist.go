// File: xorlist.go
// Role: §4.C — the XOR-list store. For every solved node, an append-only
// sequence of ids whose XOR equals that node's payload. Entries may be
// check-node ids (leaves) or composite (message/auxiliary) node ids
// recorded by indirection; the store never eagerly expands or dedupes,
// since XOR is idempotent under pairwise cancellation regardless of
// order, and eager dedup would cost O(k) per solving step.
//
// Construction only ever references already-solved nodes, so expansion
// always terminates: a reference can only point to a node whose own
// xor_list was frozen at an earlier point in solve order.

package core

// setXORList installs ids as node n's frozen xor-list. Used once, by the
// aux rule (down[n] is copied wholesale), by the propagation rule
// (xor_list[from] ⧺ S_from) or by check-block ingestion (the initial
// [n] ⧺ S sequence). Per invariant 4, xor_list[n] is never
// written again after this call.
func (g *Graph) setXORList(n int, ids []int) {
	g.xorList[n] = ids
}

// RawXORList returns node n's xor-list exactly as recorded: a mix of
// check-node ids and composite-node indirections, in append order. n
// must be solved. The returned slice is a copy; callers may not mutate
// internal state through it.
func (g *Graph) RawXORList(n int) []int {
	src := g.xorList[n]
	out := make([]int, len(src))
	copy(out, src)

	return out
}

// ExpandXORList returns node n's check-only xor-list. If expandAux is
// false this is identical to RawXORList. If true, every composite
// (message or auxiliary) entry is recursively replaced by its own
// xor-list until only check-node ids remain; duplicates are preserved
// intentionally (see file doc).
func (g *Graph) ExpandXORList(n int, expandAux bool) []int {
	if !expandAux {
		return g.RawXORList(n)
	}

	var out []int
	g.expandInto(n, &out)

	return out
}

// expandInto recursively appends the check-leaf expansion of node n's
// xor-list onto out.
func (g *Graph) expandInto(n int, out *[]int) {
	for _, ref := range g.xorList[n] {
		if g.Kind(ref) == KindCheck {
			*out = append(*out, ref)
		} else {
			g.expandInto(ref, out)
		}
	}
}
