// Package codec is a reference Online Codes encoder: it derives an
// auxiliary mapping and, for any check-block index, the composite
// neighbour list a real sender would have XORed together to produce
// that block's payload.
//
// codec is reference/test infrastructure, not part of the decoding
// core. It exists so round-trip tests can drive decoder.IngestCheckBlock
// and decoder.Create with realistic, reproducible inputs instead of
// hand-built fixtures; core and decoder import nothing from it.
//
// Complexity:
//
//	– New:          O(mblocks * quality) to build the auxiliary mapping
//	– Neighbours:   O(degree) per call, degree drawn from the online
//	  soliton distribution
//
// Determinism: New and Neighbours are seeded exclusively from their
// arguments (seed, checkBlockID) via an adapted Mersenne Twister, never
// from wall-clock time; the same arguments always produce the same
// mapping and neighbour lists.
package codec
