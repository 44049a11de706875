// File: block.go
// Role: a padding-aware byte block and its XOR operation, adapted from
// google-gofountain's block/block.xor. Padding bytes act as the XOR
// identity, so XORing a short block into a longer one only ever needs to
// grow the shorter one's data, never shrink the longer one's.

package blockstore

// Block is a contiguous range of message or code bytes, plus a count of
// trailing padding bytes not physically stored (padding always XORs as
// zero).
type Block struct {
	data    []byte
	padding int
}

// NewBlock returns a Block of the given length, entirely padding.
func NewBlock(length int) *Block {
	return &Block{padding: length}
}

// NewBlockFromBytes returns a Block wrapping data directly, with no
// padding.
func NewBlockFromBytes(data []byte) *Block {
	return &Block{data: data}
}

// Length returns the block's total length: stored data plus padding.
func (b *Block) Length() int {
	return len(b.data) + b.padding
}

// Bytes returns the block's content, data followed by zero-valued padding
// out to Length().
func (b *Block) Bytes() []byte {
	out := make([]byte, b.Length())
	copy(out, b.data)

	return out
}

// XOR combines a into b in place. Padding counts as the XOR identity, so
// XORing a longer block into a shorter one grows b's stored data (never
// its total Length, which callers are expected to have agreed on in
// advance via equal partitioning).
func (b *Block) XOR(a *Block) {
	if len(b.data) < len(a.data) {
		grow := len(a.data) - len(b.data)
		b.data = append(b.data, make([]byte, grow)...)
		if b.padding > grow {
			b.padding -= grow
		} else {
			b.padding = 0
		}
	}

	for i := 0; i < len(a.data); i++ {
		b.data[i] ^= a.data[i]
	}
}
