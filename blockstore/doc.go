// Package blockstore turns decoder.XORList output into physical bytes: a
// fixed-size, padding-aware Block type and message partitioning, adapted
// from google-gofountain's block.go (partitionBytes, equalizeBlockLengths,
// block.xor), plus a Store keyed by check-node id for round-trip tests
// to recover a message block's bytes once the decoder has resolved it.
//
// blockstore is reference/test infrastructure, like codec: decoder and
// core depend on neither, and know nothing about bytes — only node ids.
//
// Complexity:
//
//	– PartitionMessage: O(len(message))
//	– Block.XOR:         O(len(block))
//	– Store.Recover:     O(sum of block lengths referenced)
package blockstore
