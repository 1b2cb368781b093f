package randgen

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/opd-ai/go-randgen/internal/chacha20"
)

const (
	// ChaCha20KeySize is the key length in bytes.
	ChaCha20KeySize = 32

	// ChaCha20ConstantSize is the length of the domain constant in bytes.
	ChaCha20ConstantSize = 16

	// ChaCha20BlockSize is the size of one keystream block in bytes.
	ChaCha20BlockSize = chacha20.BlockSize

	// ChaCha20Constant is the canonical constant for 256-bit keys.
	ChaCha20Constant = chacha20.Sigma
)

// ChaCha20 is the cryptographically strong generator: a ChaCha20 keystream
// with a 64-bit block counter and a 64-bit nonce.
//
// The counter is the only position coordinate. Every call to Next emits the
// block at the current counter and advances it by one.
type ChaCha20 struct {
	state [chacha20.StateWords]uint32
}

var _ Generator[uint32] = (*ChaCha20)(nil)
var _ io.Seeker = (*ChaCha20)(nil)

// ChaCha20FromParts builds a generator from an explicit 16-byte constant, a
// 32-byte key, a nonce and a starting block counter. Both buffers are read
// as little-endian 32-bit words; bytes past the required length are ignored.
func ChaCha20FromParts(constant, key []byte, nonce, counter uint64) (*ChaCha20, error) {
	if len(constant) < ChaCha20ConstantSize {
		return nil, fmt.Errorf("%w: constant is %d bytes, need %d",
			ErrInsufficientSeedData, len(constant), ChaCha20ConstantSize)
	}
	if len(key) < ChaCha20KeySize {
		return nil, fmt.Errorf("%w: key is %d bytes, need %d",
			ErrInsufficientSeedData, len(key), ChaCha20KeySize)
	}

	g := &ChaCha20{}
	for i := 0; i < 4; i++ {
		g.state[i] = binary.LittleEndian.Uint32(constant[4*i:])
	}
	for i := 0; i < 8; i++ {
		g.state[4+i] = binary.LittleEndian.Uint32(key[4*i:])
	}
	chacha20.SetCounter(&g.state, counter)
	chacha20.SetNonce(&g.state, nonce)

	return g, nil
}

// NewChaCha20 builds a generator with the canonical "expand 32-byte k"
// constant and a key read from keySource. Exactly 32 bytes are consumed.
//
// A source that runs dry before 32 bytes fails with ErrInsufficientSeedData;
// any other read error is returned as is (wrapped).
func NewChaCha20(keySource io.Reader, nonce, counter uint64) (*ChaCha20, error) {
	var key [ChaCha20KeySize]byte
	if _, err := io.ReadFull(keySource, key[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: reading key: %v", ErrInsufficientSeedData, err)
		}
		return nil, fmt.Errorf("randgen: reading key: %w", err)
	}
	defer zeroBytes(key[:])

	return ChaCha20FromParts([]byte(ChaCha20Constant), key[:], nonce, counter)
}

// BlockLen returns 16.
func (g *ChaCha20) BlockLen() int {
	return chacha20.StateWords
}

// Next writes the keystream block at the current counter into out and
// advances the counter. out must hold exactly 16 words.
func (g *ChaCha20) Next(out []uint32) {
	checkBlockLen("randgen: ChaCha20.Next", out, chacha20.StateWords)
	chacha20.Block(&g.state, (*[chacha20.StateWords]uint32)(out))
}

// Seek moves the generator to a byte offset in its keystream. The resulting
// position must be a non-negative multiple of the 64-byte block size.
// io.SeekStart and io.SeekCurrent are supported; io.SeekEnd is not, since
// the keystream has no end.
//
// Offsets are int64, so only the first 2^63 bytes (counters below 2^57) are
// reachable through Seek. Relative seeks from a counter beyond that fail
// with ErrInvalidSeek; use SeekTo or ChaCha20FromParts to go further.
func (g *ChaCha20) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		ctr := g.Counter()
		if ctr > math.MaxInt64/ChaCha20BlockSize {
			return 0, fmt.Errorf("%w: counter %d is past the int64 offset range",
				ErrInvalidSeek, ctr)
		}
		cur := int64(ctr * ChaCha20BlockSize)
		if offset == 0 {
			return cur, nil
		}
		pos = cur + offset
		if offset > 0 && pos < cur {
			return 0, fmt.Errorf("%w: offset %d overflows from %d", ErrInvalidSeek, offset, cur)
		}
	default:
		return 0, fmt.Errorf("%w: unsupported whence %d", ErrInvalidSeek, whence)
	}
	if pos < 0 {
		return 0, fmt.Errorf("%w: negative position %d", ErrInvalidSeek, pos)
	}

	if err := g.SeekTo(uint64(pos)); err != nil {
		return 0, err
	}
	return pos, nil
}

// SeekTo moves the generator to the absolute byte offset pos, which must be
// a multiple of 64.
func (g *ChaCha20) SeekTo(pos uint64) error {
	if pos%ChaCha20BlockSize != 0 {
		return fmt.Errorf("%w: offset %d is not a multiple of %d",
			ErrInvalidSeek, pos, ChaCha20BlockSize)
	}
	chacha20.SetCounter(&g.state, pos/ChaCha20BlockSize)
	logger.Debug("chacha20 seek", "position", pos)
	return nil
}

// Position returns the byte offset of the next block, counter×64. It wraps
// modulo 2^64 for counters at or above 2^58.
func (g *ChaCha20) Position() uint64 {
	return chacha20.Counter(&g.state) * ChaCha20BlockSize
}

// Counter returns the block counter.
func (g *ChaCha20) Counter() uint64 {
	return chacha20.Counter(&g.state)
}

// Nonce returns the nonce.
func (g *ChaCha20) Nonce() uint64 {
	return chacha20.Nonce(&g.state)
}
