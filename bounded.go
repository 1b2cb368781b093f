package randgen

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MaxBound is the largest bound a Range accepts, 2^32.
const MaxBound = 1 << 32

// Range draws unbiased integers in [0, bound) using Lemire's multiply-shift
// method with rejection.
//
// A 32-bit word x is scaled by bound to a 64-bit product m; the high half is
// the candidate result. Candidates whose low half falls below 2^32 mod bound
// are rejected, which removes the bias of the plain multiply-shift. The
// rejection threshold costs a division, so it is computed lazily and cached
// until the bound changes. Reuse one Range for many draws at the same bound.
//
// The zero value has no bound; call Reset before drawing.
type Range struct {
	bound  uint64
	thresh uint32
	cached bool
}

// NewRange returns a Range over [0, bound). bound must be in (0, 2^32].
func NewRange(bound uint64) (*Range, error) {
	r := &Range{}
	if err := r.Reset(bound); err != nil {
		return nil, err
	}
	return r, nil
}

// Reset changes the bound. The cached threshold survives only if bound is
// unchanged.
func (r *Range) Reset(bound uint64) error {
	if bound == 0 || bound > MaxBound {
		return fmt.Errorf("%w: %d not in (0, 2^32]", ErrInvalidBound, bound)
	}
	if r.bound != bound {
		r.bound = bound
		r.cached = false
	}
	return nil
}

// Bound returns the current bound, or 0 if none has been set.
func (r *Range) Bound() uint64 {
	return r.bound
}

// threshold returns 2^32 mod bound, computing it on first use.
func (r *Range) threshold() uint32 {
	if !r.cached {
		r.thresh = uint32(MaxBound % r.bound)
		r.cached = true
	}
	return r.thresh
}

// Draw returns a uniform integer in [0, bound), reading little-endian 32-bit
// words from src. A bound of 1 returns 0 without reading. Read errors from
// src are returned unchanged.
func (r *Range) Draw(src io.Reader) (uint32, error) {
	switch r.bound {
	case 0:
		return 0, fmt.Errorf("%w: no bound set", ErrInvalidBound)
	case 1:
		return 0, nil
	}

	x, err := readUint32(src)
	if err != nil {
		return 0, err
	}
	m := uint64(x) * r.bound
	// For bound == 2^32 the low half is always 0 and nothing is rejected.
	if uint32(m) < uint32(r.bound) {
		t := r.threshold()
		for uint32(m) < t {
			if x, err = readUint32(src); err != nil {
				return 0, err
			}
			m = uint64(x) * r.bound
		}
	}
	return uint32(m >> 32), nil
}

// Uint32N returns a uniform integer in [0, n) drawn from src.
func Uint32N(src io.Reader, n uint64) (uint32, error) {
	r, err := NewRange(n)
	if err != nil {
		return 0, err
	}
	return r.Draw(src)
}

// IntRange returns a uniform integer in the inclusive range [lo, hi].
func IntRange(src io.Reader, lo, hi uint32) (uint32, error) {
	if hi < lo {
		return 0, fmt.Errorf("%w: empty range [%d, %d]", ErrInvalidBound, lo, hi)
	}
	v, err := Uint32N(src, uint64(hi-lo)+1)
	if err != nil {
		return 0, err
	}
	return lo + v, nil
}

// Choose returns a uniformly chosen element of items.
func Choose[T any](src io.Reader, items []T) (T, error) {
	var zero T
	i, err := Uint32N(src, uint64(len(items)))
	if err != nil {
		return zero, err
	}
	return items[i], nil
}

func readUint32(src io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(src, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func readUint64(src io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(src, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
