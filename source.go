package randgen

import "math/rand"

// Uint64Source is anything that yields uniform 64-bit words, such as a
// Stream or a Rand.
type Uint64Source interface {
	Uint64() uint64
}

// streamSource adapts a Uint64Source to the math/rand Source64 interface.
type streamSource struct {
	src Uint64Source
}

// NewSource returns a math/rand Source64 drawing from src, so any generator
// can back a *rand.Rand:
//
//	r := rand.New(randgen.NewSource(stream))
//
// Seed is a no-op; restart a stream by rebuilding its generator.
func NewSource(src Uint64Source) rand.Source64 {
	return &streamSource{src: src}
}

func (s *streamSource) Uint64() uint64 {
	return s.src.Uint64()
}

func (s *streamSource) Int63() int64 {
	return int64(s.src.Uint64() &^ (1 << 63))
}

func (s *streamSource) Seed(int64) {}
