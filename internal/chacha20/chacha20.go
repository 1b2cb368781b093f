// Package chacha20 implements the ChaCha20 permutation and counter-mode
// block function used by the randgen keystream generator.
//
// The state layout differs from the IETF AEAD layout: words 12 and 13 hold
// a 64-bit block counter (low word first) and words 14 and 15 hold a 64-bit
// nonce (low word first). While the counter stays below 2^32 the output is
// identical to the IETF variant with a 96-bit nonce whose first word is zero.
//
// Reference: RFC 8439, Section 2
package chacha20

import "math/bits"

const (
	// StateWords is the number of 32-bit words in the ChaCha20 state.
	StateWords = 16

	// BlockSize is the size of one keystream block in bytes.
	BlockSize = StateWords * 4

	// Rounds is the number of rounds applied per block (10 double rounds).
	Rounds = 20

	// Indices of the counter and nonce words inside the state.
	CounterLo = 12
	CounterHi = 13
	NonceLo   = 14
	NonceHi   = 15
)

// Sigma is the canonical 16-byte constant for 256-bit keys.
const Sigma = "expand 32-byte k"

// QuarterRound applies the ChaCha quarter round to (a, b, c, d).
//
// All additions are modulo 2^32. The rotation amounts are 16, 12, 8 and 7.
//
// Reference: RFC 8439, Section 2.1
func QuarterRound(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	a += b
	d = bits.RotateLeft32(d^a, 16)
	c += d
	b = bits.RotateLeft32(b^c, 12)

	a += b
	d = bits.RotateLeft32(d^a, 8)
	c += d
	b = bits.RotateLeft32(b^c, 7)

	return a, b, c, d
}

// DoubleRound applies one column round followed by one diagonal round to x
// in place.
//
// Reference: RFC 8439, Section 2.3
func DoubleRound(x *[StateWords]uint32) {
	// Column round
	x[0], x[4], x[8], x[12] = QuarterRound(x[0], x[4], x[8], x[12])
	x[1], x[5], x[9], x[13] = QuarterRound(x[1], x[5], x[9], x[13])
	x[2], x[6], x[10], x[14] = QuarterRound(x[2], x[6], x[10], x[14])
	x[3], x[7], x[11], x[15] = QuarterRound(x[3], x[7], x[11], x[15])

	// Diagonal round
	x[0], x[5], x[10], x[15] = QuarterRound(x[0], x[5], x[10], x[15])
	x[1], x[6], x[11], x[12] = QuarterRound(x[1], x[6], x[11], x[12])
	x[2], x[7], x[8], x[13] = QuarterRound(x[2], x[7], x[8], x[13])
	x[3], x[4], x[9], x[14] = QuarterRound(x[3], x[4], x[9], x[14])
}

// Block computes the keystream block for the current state into out and
// then advances the 64-bit block counter by one, wrapping at 2^64.
//
// The permuted words are added back to the original state (feed-forward)
// before being written to out. The output is never written back into the
// state; the counter increment is the only mutation of state.
func Block(state *[StateWords]uint32, out *[StateWords]uint32) {
	x := *state
	for i := 0; i < Rounds/2; i++ {
		DoubleRound(&x)
	}
	for i := range x {
		out[i] = x[i] + state[i]
	}

	SetCounter(state, Counter(state)+1)
}

// Counter returns the 64-bit block counter stored in state.
func Counter(state *[StateWords]uint32) uint64 {
	return uint64(state[CounterLo]) | uint64(state[CounterHi])<<32
}

// SetCounter stores ctr into the counter words of state.
func SetCounter(state *[StateWords]uint32, ctr uint64) {
	state[CounterLo] = uint32(ctr)
	state[CounterHi] = uint32(ctr >> 32)
}

// Nonce returns the 64-bit nonce stored in state.
func Nonce(state *[StateWords]uint32) uint64 {
	return uint64(state[NonceLo]) | uint64(state[NonceHi])<<32
}

// SetNonce stores nonce into the nonce words of state.
func SetNonce(state *[StateWords]uint32, nonce uint64) {
	state[NonceLo] = uint32(nonce)
	state[NonceHi] = uint32(nonce >> 32)
}
