package randgen

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/opd-ai/go-randgen/internal"
)

// AESMixSeedSize is the seed length of AESMix in bytes.
const AESMixSeedSize = 64

// aesMixKeys are the four AES-128 column keys, taken from
// Blake2b-512("randgen AESMix column keys").
var aesMixKeys = func() [4][16]byte {
	h := internal.Blake2b512([]byte("randgen AESMix column keys"))
	var keys [4][16]byte
	for i := range keys {
		copy(keys[i][:], h[16*i:])
	}
	return keys
}()

// AES block operations are stateless, so all AESMix instances share them.
var aesMixCiphers = internal.MustAESEncryptors(aesMixKeys[:]...)

// AESMix is a non-cryptographic generator that applies one AES-128 block
// operation (all ten rounds) per 16-byte column to a 64-byte state. Columns
// 0 and 2 are decrypted and columns 1 and 3 encrypted, each with its own
// key, and the new state is the output block. It is fast on hardware with AES instructions but carries no
// security guarantee.
type AESMix struct {
	state [AESMixSeedSize]byte
}

var _ Generator[uint32] = (*AESMix)(nil)

// NewAESMix creates a generator from a 64-byte seed. Bytes past the first 64
// are ignored.
func NewAESMix(seed []byte) (*AESMix, error) {
	if len(seed) < AESMixSeedSize {
		return nil, fmt.Errorf("%w: seed is %d bytes, need %d",
			ErrInsufficientSeedData, len(seed), AESMixSeedSize)
	}

	g := &AESMix{}
	copy(g.state[:], seed)
	return g, nil
}

// NewAESMixFromReader reads a 64-byte seed from r.
func NewAESMixFromReader(r io.Reader) (*AESMix, error) {
	b, err := readSeed(r, AESMixSeedSize)
	if err != nil {
		return nil, err
	}
	defer zeroBytes(b)
	return NewAESMix(b)
}

// BlockLen returns 16.
func (g *AESMix) BlockLen() int {
	return AESMixSeedSize / 4
}

// Next mixes the state and writes it to out as little-endian words.
func (g *AESMix) Next(out []uint32) {
	checkBlockLen("randgen: AESMix.Next", out, AESMixSeedSize/4)

	var next [AESMixSeedSize]byte

	// Column 0 (decrypt with key0)
	aesMixCiphers[0].Decrypt(next[0:16], g.state[0:16])

	// Column 1 (encrypt with key1)
	aesMixCiphers[1].Encrypt(next[16:32], g.state[16:32])

	// Column 2 (decrypt with key2)
	aesMixCiphers[2].Decrypt(next[32:48], g.state[32:48])

	// Column 3 (encrypt with key3)
	aesMixCiphers[3].Encrypt(next[48:64], g.state[48:64])

	g.state = next
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(g.state[4*i:])
	}
}
