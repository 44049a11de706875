// Package decoder is the public surface of the bipartite-graph decoder: a
// thin façade over core.Graph that implements the four external
// operations — Create, IngestCheckBlock, Resolve and XORList — and
// translates core's panic-on-invariant-violation internals into ordinary
// returned errors.
//
// Complexity:
//
//	– Create:           O(mblocks + ablocks + node_space)
//	– IngestCheckBlock:  O(degree) amortised
//	– Resolve:           O(total work done) amortised across calls
//	– XORList:           O(list length), or O(expansion size) with expandAux
//
// Options:
//
//	– WithNodeSpace:  overrides the default node-space sizing formula.
//	– WithOverhead:   supplies the codec's quality/epsilon parameters so
//	  the default node-space formula can be computed exactly, instead of
//	  derived from the auxiliary mapping's average degree.
//	– WithPrivatePool: gives the decoder's Graph its own node pool instead
//	  of the shared, process-wide one (see core.WithPrivatePool).
//
// Errors (sentinel):
//
//	– ErrConfig:   a Create argument is structurally invalid (mblocks or
//	  ablocks below 1, fudge not greater than 1.0, a malformed auxiliary
//	  mapping, an out-of-range neighbour id).
//	– ErrCapacity: a check block arrived after the pre-sized node space
//	  was exhausted.
//	– core.ErrInvariant: core detected an internal invariant violation; the
//	  Decoder must not be used again afterward (see Decoder.Broken).
//
// Thread safety: a Decoder is not safe for concurrent use, matching the
// core.Graph it wraps (see core's doc.go). Decoders on the shared node
// pool must all stay on one goroutine; a Decoder built WithPrivatePool
// touches no shared state, so it may live on a goroutine of its own.
//
// Example usage:
//
//	d, err := decoder.Create(mblocks, ablocks, auxMapping, fudge)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, blk := range incoming {
//	    if _, err := d.IngestCheckBlock(blk.Neighbours); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	done, solved, err := d.Resolve(0)
package decoder
