package randgen

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Stream exposes a Generator as an unbounded byte sequence.
//
// Words are serialized little-endian, so the byte sequence is the same on
// every platform. A Stream cannot be rewound unless its generator supports
// seeking; otherwise restart by rebuilding the generator from its seed.
type Stream[W Word] struct {
	gen  Generator[W]
	buf  []W // last produced block
	cur  int // byte offset into buf
	size int // bytes per word
}

var (
	_ io.Reader     = (*Stream[uint32])(nil)
	_ io.ByteReader = (*Stream[uint64])(nil)
	_ io.Seeker     = (*Stream[uint32])(nil)
)

// NewStream wraps g. No block is produced until the first byte is read.
func NewStream[W Word](g Generator[W]) *Stream[W] {
	s := &Stream[W]{
		gen:  g,
		buf:  make([]W, g.BlockLen()),
		size: wordSize[W](),
	}
	s.cur = s.blockBytes() // Force initial generation
	return s
}

// Generator returns the underlying generator.
func (s *Stream[W]) Generator() Generator[W] {
	return s.gen
}

func (s *Stream[W]) blockBytes() int {
	return len(s.buf) * s.size
}

// refill produces the next block and rewinds the cursor.
func (s *Stream[W]) refill() {
	s.gen.Next(s.buf)
	s.cur = 0
}

// nextByte returns byte cur%size of word cur/size and advances the cursor.
func (s *Stream[W]) nextByte() byte {
	if s.cur >= s.blockBytes() {
		s.refill()
	}
	w := uint64(s.buf[s.cur/s.size])
	b := byte(w >> (8 * uint(s.cur%s.size)))
	s.cur++
	return b
}

// ReadByte returns the next byte. It never fails.
func (s *Stream[W]) ReadByte() (byte, error) {
	return s.nextByte(), nil
}

// Read fills p completely. It always returns len(p), nil.
func (s *Stream[W]) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = s.nextByte()
	}
	return len(p), nil
}

// Uint32 returns the next four bytes as a little-endian uint32.
func (s *Stream[W]) Uint32() uint32 {
	var b [4]byte
	_, _ = s.Read(b[:])
	return binary.LittleEndian.Uint32(b[:])
}

// Uint64 returns the next eight bytes as a little-endian uint64.
func (s *Stream[W]) Uint64() uint64 {
	var b [8]byte
	_, _ = s.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// Seek moves the stream to an arbitrary byte offset. The generator must be
// seekable; the stream seeks it to the block containing the offset and
// skips into that block, so offsets need not be block-aligned here.
//
// Positions are int64 byte offsets. Once the generator is past the int64
// range, relative seeks and Position fail with ErrInvalidSeek.
func (s *Stream[W]) Seek(offset int64, whence int) (int64, error) {
	p, ok := s.gen.(io.Seeker)
	if !ok {
		return 0, ErrNotSeekable
	}

	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		cur, err := s.position(p)
		if err != nil {
			return 0, err
		}
		target = cur + offset
		if offset > 0 && target < cur {
			return 0, fmt.Errorf("%w: offset %d overflows from %d", ErrInvalidSeek, offset, cur)
		}
	default:
		return 0, fmt.Errorf("%w: unsupported whence %d", ErrInvalidSeek, whence)
	}
	if target < 0 {
		return 0, fmt.Errorf("%w: negative position %d", ErrInvalidSeek, target)
	}

	n := int64(s.blockBytes())
	if _, err := p.Seek(target-target%n, io.SeekStart); err != nil {
		return 0, err
	}
	s.cur = int(n)
	if skip := int(target % n); skip != 0 {
		s.refill()
		s.cur = skip
	}
	return target, nil
}

// Position returns the byte offset of the next byte Read will return.
func (s *Stream[W]) Position() (uint64, error) {
	p, ok := s.gen.(io.Seeker)
	if !ok {
		return 0, ErrNotSeekable
	}
	pos, err := s.position(p)
	if err != nil {
		return 0, err
	}
	return uint64(pos), nil
}

// position backs the generator's next-block offset up by the bytes still
// buffered.
func (s *Stream[W]) position(p io.Seeker) (int64, error) {
	next, err := p.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	pending := int64(s.blockBytes() - s.cur)
	if next < pending {
		return 0, fmt.Errorf("%w: generator position %d wrapped", ErrInvalidSeek, next)
	}
	return next - pending, nil
}
