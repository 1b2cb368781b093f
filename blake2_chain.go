package randgen

import (
	"encoding/binary"

	"github.com/opd-ai/go-randgen/internal"
)

// Blake2bChain is a deterministic generator based on Blake2b.
//
// The generator maintains a 64-byte state that is repeatedly hashed with
// Blake2b-512; each new state is emitted as one block of eight 64-bit words.
// It accepts seed material of any length. It is a hash chain, not a
// keystream: it cannot seek and it is not meant for secrets.
type Blake2bChain struct {
	data [64]byte // Current Blake2b-512 output
}

var _ Generator[uint64] = (*Blake2bChain)(nil)

// NewBlake2bChain creates a new generator initialized with a seed.
// The seed is hashed with Blake2b-512 to create the initial state.
func NewBlake2bChain(seed []byte) *Blake2bChain {
	return &Blake2bChain{data: internal.Blake2b512(seed)}
}

// BlockLen returns 8.
func (g *Blake2bChain) BlockLen() int {
	return len(g.data) / 8
}

// Next hashes the current state to get the next state and writes it to out.
func (g *Blake2bChain) Next(out []uint64) {
	checkBlockLen("randgen: Blake2bChain.Next", out, len(g.data)/8)

	g.data = internal.Blake2b512(g.data[:])
	for i := range out {
		out[i] = binary.LittleEndian.Uint64(g.data[8*i:])
	}
}
