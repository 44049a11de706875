// File: mersenne.go
// Role: a from-scratch-seedable PRNG source. Online Codes needs a
// pseudo-random index sequence that is reproducible from a single
// integer (the check-block id) rather than from the default runtime
// entropy math/rand.NewSource would pull in; MT19937 is the standard
// choice for this (adapted from google-gofountain's mersenne.go, the
// reference codec implementation in the retrieval pack).

package codec

const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
)

// mersenneTwister implements rand.Source (Int63 only; Online Codes never
// needs more than 32 bits of a draw) via the standard MT19937 algorithm.
type mersenneTwister struct {
	state [mtN]uint32
	index int
}

// newMersenneTwister returns a rand.Source seeded deterministically from
// seed; the same seed always produces the same stream.
func newMersenneTwister(seed int64) *mersenneTwister {
	t := &mersenneTwister{}
	t.Seed(seed)

	return t
}

// Seed folds the high and low 32-bit halves of seed together, so a
// full-width int64 (a check-block id) still seeds deterministically.
func (t *mersenneTwister) Seed(seed int64) {
	t.initialize(uint32((seed >> 32) ^ seed))
}

// Int63 combines two Uint32 draws into a 63-bit non-negative value, per
// the rand.Source contract.
func (t *mersenneTwister) Int63() int64 {
	a := t.Uint32()
	b := t.Uint32()

	return (int64(a) << 31) ^ int64(b)
}

func (t *mersenneTwister) Uint32() uint32 {
	if t.index >= mtN {
		t.generateUntempered()
	}

	y := t.state[t.index]
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18

	t.index++

	return y
}

func (t *mersenneTwister) initialize(seed uint32) {
	t.state[0] = seed
	for i := 1; i < mtN; i++ {
		t.state[i] = 1812433253*(t.state[i-1]^(t.state[i-1]>>30)) + uint32(i)
	}
	t.index = mtN
}

func (t *mersenneTwister) generateUntempered() {
	for i := 0; i < mtN; i++ {
		y := (t.state[i] & mtUpperMask) | (t.state[(i+1)%mtN] & mtLowerMask)
		next := t.state[(i+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			next ^= mtMatrixA
		}
		t.state[i] = next
	}
	t.index = 0
}
