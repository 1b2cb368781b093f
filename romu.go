package randgen

import (
	"io"
	"math/bits"
)

// Romu32x4 is Mark Overton's RomuQuad32 generator: four 32-bit words of
// state, one multiply per output. It carries no security guarantee.
//
// Reference: https://www.romu-random.org/
type Romu32x4 struct {
	w, x, y, z uint32
}

var _ Generator[uint32] = (*Romu32x4)(nil)

// NewRomu32x4 returns a generator with the given state. The state should not
// be all zero.
func NewRomu32x4(state [4]uint32) *Romu32x4 {
	return &Romu32x4{w: state[0], x: state[1], y: state[2], z: state[3]}
}

// NewRomu32x4FromReader reads 16 bytes of little-endian state from r.
func NewRomu32x4FromReader(r io.Reader) (*Romu32x4, error) {
	b, err := readSeed(r, 16)
	if err != nil {
		return nil, err
	}
	defer zeroBytes(b)

	var state [4]uint32
	decodeWords32(state[:], b)
	return NewRomu32x4(state), nil
}

// BlockLen returns 1.
func (g *Romu32x4) BlockLen() int {
	return 1
}

// Next writes one 32-bit output into out.
func (g *Romu32x4) Next(out []uint32) {
	checkBlockLen("randgen: Romu32x4.Next", out, 1)

	wp, xp, yp, zp := g.w, g.x, g.y, g.z
	g.w = 3323815723 * zp
	g.x = zp + bits.RotateLeft32(wp, 26)
	g.y = yp - xp
	g.z = bits.RotateLeft32(yp+wp, 9)
	out[0] = xp
}
