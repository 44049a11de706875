package codec_test

import (
	"testing"

	"github.com/ratcode/oncode/codec"
)

func TestNewIsDeterministic(t *testing.T) {
	a := codec.New(20, 3, 0.2, 3, 42)
	b := codec.New(20, 3, 0.2, 3, 42)

	am, bm := a.AuxMapping(), b.AuxMapping()
	if len(am) != len(bm) {
		t.Fatalf("aux mapping length mismatch: %d vs %d", len(am), len(bm))
	}
	for i := range am {
		if !intSliceEqual(am[i], bm[i]) {
			t.Errorf("aux block %d diverged: %v vs %v", i, am[i], bm[i])
		}
	}

	for id := int64(0); id < 10; id++ {
		if !intSliceEqual(a.Neighbours(id), b.Neighbours(id)) {
			t.Errorf("neighbours(%d) diverged: %v vs %v", id, a.Neighbours(id), b.Neighbours(id))
		}
	}
}

func TestAuxMappingStaysWithinMessageRange(t *testing.T) {
	mblocks, ablocks := 16, 4
	c := codec.New(mblocks, ablocks, 0.3, 3, 7)

	for a, ids := range c.AuxMapping() {
		for _, m := range ids {
			if m < 0 || m >= mblocks {
				t.Errorf("aux block %d references out-of-range message %d", a, m)
			}
		}
	}
}

func TestNeighboursStayWithinCompositeRange(t *testing.T) {
	mblocks, ablocks := 16, 4
	c := codec.New(mblocks, ablocks, 0.3, 3, 7)

	for id := int64(0); id < 50; id++ {
		ids := c.Neighbours(id)
		if len(ids) == 0 {
			t.Errorf("neighbours(%d) returned no ids", id)
		}
		seen := make(map[int]bool, len(ids))
		for _, n := range ids {
			if n < 0 || n >= mblocks+ablocks {
				t.Errorf("neighbours(%d) out of range id %d", id, n)
			}
			if seen[n] {
				t.Errorf("neighbours(%d) repeated id %d", id, n)
			}
			seen[n] = true
		}
	}
}

func TestNumAuxBlocksMatchesPaperFormula(t *testing.T) {
	// ceil(0.55 * 3 * 0.01 * 1000) = ceil(16.5) = 17
	got := codec.NumAuxBlocks(1000, 0.01, 3)
	if got != 17 {
		t.Errorf("NumAuxBlocks(1000, 0.01, 3) = %d, want 17", got)
	}
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
