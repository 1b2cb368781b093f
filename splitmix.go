package randgen

// SplitMix64 is Vigna's SplitMix64 generator: a Weyl sequence passed through
// a 64-bit finalizer. It is fast and statistically solid but offers no
// security guarantee; do not use it for keys, nonces or anything an
// adversary may try to predict.
type SplitMix64 struct {
	state uint64
}

var _ Generator[uint64] = (*SplitMix64)(nil)

// NewSplitMix64 returns a generator whose state starts at seed.
func NewSplitMix64(seed uint64) *SplitMix64 {
	return &SplitMix64{state: seed}
}

// BlockLen returns 1.
func (g *SplitMix64) BlockLen() int {
	return 1
}

// Next writes one 64-bit output into out.
func (g *SplitMix64) Next(out []uint64) {
	checkBlockLen("randgen: SplitMix64.Next", out, 1)
	out[0] = g.next()
}

func (g *SplitMix64) next() uint64 {
	g.state += 0x9e3779b97f4a7c15
	z := g.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
