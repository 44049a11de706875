// File: partition.go
// Role: RFC 5053 §5.3.1.2-style block partitioning, adapted from
// google-gofountain's partition/partitionBytes/equalizeBlockLengths: split
// a message of arbitrary length into numBlocks same-length (padding-
// equalized) blocks.

package blockstore

import "math"

// partition splits a size of i bytes into j pieces: jl "long" pieces of
// length il and js "short" pieces of length is, differing by at most one
// byte (il == is+1, or one of the two counts is zero).
func partition(i, j int) (il, is, jl, js int) {
	il = int(math.Ceil(float64(i) / float64(j)))
	is = int(math.Floor(float64(i) / float64(j)))
	jl = i - (is * j)
	js = j - jl

	if jl == 0 {
		il = 0
	}
	if js == 0 {
		is = 0
	}

	return il, is, jl, js
}

// PartitionMessage splits message into numBlocks Blocks of uniform
// length, the last few padded out as needed so every block has the same
// Length(). numBlocks must be positive.
func PartitionMessage(message []byte, numBlocks int) []*Block {
	lenLong, lenShort, numLong, numShort := partition(len(message), numBlocks)

	slice := func(length, count int) []*Block {
		blocks := make([]*Block, count)
		for i := range blocks {
			var chunk []byte
			if len(message) > length {
				chunk, message = message[:length], message[length:]
			} else {
				chunk, message = message, nil
			}
			b := &Block{data: chunk}
			if len(chunk) < length {
				b.padding = length - len(chunk)
			}
			blocks[i] = b
		}

		return blocks
	}

	long := slice(lenLong, numLong)
	short := slice(lenShort, numShort)

	if len(long) == 0 {
		return short
	}
	if len(short) == 0 {
		return long
	}
	for _, b := range short {
		b.padding += long[0].Length() - b.Length()
	}

	return append(long, short...)
}
