// File: codec.go
// Role: ties the degree distribution and sampling together into the two
// things a round-trip test needs from a reference encoder: the auxiliary
// mapping core.WireAuxiliary expects, and a deterministic composite
// neighbour list per check-block id (adapted from google-gofountain's
// onlineCodec: numAuxBlocks, generateOuterEncoding's touch loop, and
// PickIndices).

package codec

import (
	"math"
	"math/rand"
)

// Codec holds the parameters of one Online Codes instance: source block
// count, auxiliary block count, the degree distribution used for every
// check block's neighbour list, and the random seed used to derive the
// auxiliary mapping (neighbour lists are seeded from the check-block id
// alone).
type Codec struct {
	mblocks int
	ablocks int
	quality int
	epsilon float64
	seed    int64
	cdf     []float64

	auxMapping [][]int
}

// NumAuxBlocks estimates the auxiliary block count the Online Codes
// paper recommends for mblocks source blocks at the given epsilon/quality
// (ceil(0.55 * quality * epsilon * mblocks)). Callers may use this to
// compute the ablocks argument to New, or supply their own.
func NumAuxBlocks(mblocks int, epsilon float64, quality int) int {
	return int(math.Ceil(0.55 * float64(quality) * epsilon * float64(mblocks)))
}

// New builds a Codec for mblocks source blocks and ablocks auxiliary
// blocks, deriving the auxiliary mapping deterministically from seed: for
// each source block i, quality randomly-chosen auxiliary blocks are made
// to depend on it (mirrors generateOuterEncoding's "touch" loop, which
// XORs bytes; here we only need the index relationships WireAuxiliary
// consumes).
func New(mblocks, ablocks int, epsilon float64, quality int, seed int64) *Codec {
	c := &Codec{
		mblocks: mblocks,
		ablocks: ablocks,
		quality: quality,
		epsilon: epsilon,
		seed:    seed,
		cdf:     onlineSolitonCDF(epsilon),
	}

	auxMapping := make([][]int, ablocks)
	random := rand.New(newMersenneTwister(seed))
	for i := 0; i < mblocks; i++ {
		touched := sampleUniform(random, quality, ablocks)
		for _, j := range touched {
			auxMapping[j] = append(auxMapping[j], i)
		}
	}
	c.auxMapping = auxMapping

	return c
}

// Quality returns the q parameter New was built with: the number of
// auxiliary blocks each message block was made to depend on. Callers
// wire this straight into decoder.WithOverhead.
func (c *Codec) Quality() int { return c.quality }

// Epsilon returns the epsilon parameter New was built with. Callers wire
// this straight into decoder.WithOverhead.
func (c *Codec) Epsilon() float64 { return c.epsilon }

// AuxMapping returns the auxiliary mapping computed at construction, in
// the shape decoder.Create and core.WireAuxiliary expect.
func (c *Codec) AuxMapping() [][]int {
	out := make([][]int, len(c.auxMapping))
	for i, ids := range c.auxMapping {
		cp := make([]int, len(ids))
		copy(cp, ids)
		out[i] = cp
	}

	return out
}

// Neighbours returns the composite (message ∪ auxiliary) neighbour list
// a check block identified by checkBlockID would have been built from:
// a degree drawn from the online soliton distribution, then that many
// distinct ids sampled uniformly from [0, mblocks+ablocks). The ids are
// already in core's combined message/auxiliary id space, so the result
// can be passed to decoder.IngestCheckBlock unchanged.
func (c *Codec) Neighbours(checkBlockID int64) []int {
	random := rand.New(newMersenneTwister(checkBlockID))
	degree := pickDegree(random, c.cdf)

	return sampleUniform(random, degree, c.mblocks+c.ablocks)
}
