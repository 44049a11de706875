// File: distribution.go
// Role: the online-soliton degree distribution and the uniform sampling
// it drives (adapted from google-gofountain's util.go: onlineSolitonDistribution,
// pickDegree, sampleUniform).

package codec

import (
	"math"
	"math/rand"
	"sort"
)

// onlineSolitonCDF returns the cumulative distribution function for the
// Online Codes degree distribution parameterised by epsilon (the
// suboptimality factor): cdf[1..F], one-based, where F is the maximum
// degree the distribution ever draws.
func onlineSolitonCDF(epsilon float64) []float64 {
	f := math.Ceil(math.Log(epsilon*epsilon/4) / math.Log(1-(epsilon/2)))

	cdf := make([]float64, int(f)+1)
	rho := 1 - ((1 + (1 / f)) / (1 + epsilon))
	cdf[1] = rho

	for i := 2; i <= int(f); i++ {
		rhoI := ((1 - rho) * f) / ((f - 1) * float64(i-1) * float64(i))
		cdf[i] = cdf[i-1] + rhoI
	}

	return cdf
}

// pickDegree draws a degree from cdf: the smallest i such that cdf[i] > r
// for a freshly-drawn uniform r. cdf must be sorted ascending.
func pickDegree(random *rand.Rand, cdf []float64) int {
	r := random.Float64()
	d := sort.SearchFloat64s(cdf, r)
	if d < len(cdf) && cdf[d] > r {
		return d
	}
	if d < len(cdf)-1 {
		return d + 1
	}

	return len(cdf) - 1
}

// sampleUniform picks num distinct values from [0, max) uniformly at
// random, returned in ascending order. If num >= max it returns every
// index in [0, max) without touching random.
func sampleUniform(random *rand.Rand, num, max int) []int {
	if num >= max {
		picks := make([]int, max)
		for i := range picks {
			picks[i] = i
		}

		return picks
	}

	picks := make([]int, 0, num)
	seen := make(map[int]bool, num)
	for len(picks) < num {
		p := random.Intn(max)
		if seen[p] {
			continue
		}
		seen[p] = true
		picks = append(picks, p)
	}
	sort.Ints(picks)

	return picks
}
