package randgen

import (
	"io"
	"math/bits"
)

// Xoroshiro1024 is the xoroshiro1024++ generator with a 1024-bit state.
// It carries no security guarantee.
//
// Reference: https://prng.di.unimi.it/xoroshiro1024plusplus.c
type Xoroshiro1024 struct {
	state [16]uint64
	p     int
}

var _ Generator[uint64] = (*Xoroshiro1024)(nil)

// NewXoroshiro1024 returns a generator with the given state. The state
// should not be all zero.
func NewXoroshiro1024(state [16]uint64) *Xoroshiro1024 {
	return &Xoroshiro1024{state: state}
}

// NewXoroshiro1024FromReader reads 128 bytes of little-endian state from r.
func NewXoroshiro1024FromReader(r io.Reader) (*Xoroshiro1024, error) {
	b, err := readSeed(r, 16*8)
	if err != nil {
		return nil, err
	}
	defer zeroBytes(b)

	g := &Xoroshiro1024{}
	decodeWords64(g.state[:], b)
	return g, nil
}

// BlockLen returns 1.
func (g *Xoroshiro1024) BlockLen() int {
	return 1
}

// Next writes one 64-bit output into out.
func (g *Xoroshiro1024) Next(out []uint64) {
	checkBlockLen("randgen: Xoroshiro1024.Next", out, 1)

	q := g.p
	g.p = (g.p + 1) & 15
	s0 := g.state[g.p]
	s15 := g.state[q]
	out[0] = bits.RotateLeft64(s0+s15, 23) + s15

	s15 ^= s0
	g.state[q] = bits.RotateLeft64(s0, 25) ^ s15 ^ (s15 << 27)
	g.state[g.p] = bits.RotateLeft64(s15, 36)
}

// Xorshift128PlusV1 is the xorshift128+ generator with shift triple
// (23, 17, 26). It carries no security guarantee.
type Xorshift128PlusV1 struct {
	state [2]uint64
}

var _ Generator[uint64] = (*Xorshift128PlusV1)(nil)

// NewXorshift128PlusV1 returns a generator with the given state. The state
// should not be all zero.
func NewXorshift128PlusV1(state [2]uint64) *Xorshift128PlusV1 {
	return &Xorshift128PlusV1{state: state}
}

// NewXorshift128PlusV1FromReader reads 16 bytes of little-endian state from r.
func NewXorshift128PlusV1FromReader(r io.Reader) (*Xorshift128PlusV1, error) {
	b, err := readSeed(r, 16)
	if err != nil {
		return nil, err
	}
	defer zeroBytes(b)

	g := &Xorshift128PlusV1{}
	decodeWords64(g.state[:], b)
	return g, nil
}

// BlockLen returns 1.
func (g *Xorshift128PlusV1) BlockLen() int {
	return 1
}

// Next writes one 64-bit output into out.
func (g *Xorshift128PlusV1) Next(out []uint64) {
	checkBlockLen("randgen: Xorshift128PlusV1.Next", out, 1)

	s1 := g.state[0]
	s0 := g.state[1]
	s1 ^= s1 << 23
	s1 = s1 ^ s0 ^ (s1 >> 17) ^ (s0 >> 26)
	g.state[0] = s0
	g.state[1] = s1
	out[0] = s1 + s0
}

// Xorshift128PlusV2 is the revised xorshift128+ generator with shift triple
// (23, 18, 5). The output is the sum of the state before the update. It
// carries no security guarantee.
type Xorshift128PlusV2 struct {
	state [2]uint64
}

var _ Generator[uint64] = (*Xorshift128PlusV2)(nil)

// NewXorshift128PlusV2 returns a generator with the given state. The state
// should not be all zero.
func NewXorshift128PlusV2(state [2]uint64) *Xorshift128PlusV2 {
	return &Xorshift128PlusV2{state: state}
}

// NewXorshift128PlusV2FromReader reads 16 bytes of little-endian state from r.
func NewXorshift128PlusV2FromReader(r io.Reader) (*Xorshift128PlusV2, error) {
	b, err := readSeed(r, 16)
	if err != nil {
		return nil, err
	}
	defer zeroBytes(b)

	g := &Xorshift128PlusV2{}
	decodeWords64(g.state[:], b)
	return g, nil
}

// BlockLen returns 1.
func (g *Xorshift128PlusV2) BlockLen() int {
	return 1
}

// Next writes one 64-bit output into out.
func (g *Xorshift128PlusV2) Next(out []uint64) {
	checkBlockLen("randgen: Xorshift128PlusV2.Next", out, 1)

	s1 := g.state[0]
	s0 := g.state[1]
	out[0] = s1 + s0
	g.state[0] = s0
	s1 ^= s1 << 23
	g.state[1] = s1 ^ s0 ^ (s1 >> 18) ^ (s0 >> 5)
}
