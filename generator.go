package randgen

import "math/bits"

// Word is the machine word a generator produces its blocks in.
type Word interface {
	~uint32 | ~uint64
}

// Generator is the contract every bit generator implements: produce the next
// fixed-size block of words into a caller-owned buffer.
//
// Next must be deterministic given the generator's prior state, and it is
// the only operation that advances that state (apart from explicit seeking
// on generators that support it). out must have exactly BlockLen words;
// implementations panic otherwise.
//
// Generators are not safe for concurrent use. Independent instances may be
// used from separate goroutines.
type Generator[W Word] interface {
	// BlockLen returns the number of words in one block.
	BlockLen() int

	// Next fills out with the next block and advances the generator.
	Next(out []W)
}

// wordSize returns the width of W in bytes.
func wordSize[W Word]() int {
	var w W
	return bits.Len64(uint64(^w)) / 8
}

func checkBlockLen[W Word](name string, out []W, n int) {
	if len(out) != n {
		panic(name + ": output buffer does not match block length")
	}
}
