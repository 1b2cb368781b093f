// Package randgen provides deterministic pseudo-random bit generators and
// the sampling primitives built on top of them.
//
// ChaCha20 is a cryptographically strong keystream generator with a 64-bit
// counter and nonce; it can seek to any block. SplitMix64, Xoroshiro1024,
// Xorshift128PlusV1/V2, Romu32x4, AESMix and Blake2bChain are fast
// generators with no security guarantee. Every generator implements the
// Generator interface and can be read as a byte sequence through a Stream.
//
// Range draws unbiased bounded integers, Shuffle permutes slices in place
// and AliasTable samples from a discrete distribution in constant time. All
// of them read from any io.Reader, so they work with a Stream, a Rand, or an
// entropy source alike.
//
// Example usage:
//
//	rng, err := randgen.New(randgen.Config{
//	    Algorithm: randgen.ChaCha20Algorithm,
//	    Seed:      []byte("reproducible seed"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	deck := []int{1, 2, 3, 4, 5}
//	if err := randgen.Shuffle(deck, rng); err != nil {
//	    log.Fatal(err)
//	}
//
// Nothing in this package is safe for concurrent use; give each goroutine
// its own generator.
package randgen

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"

	"github.com/opd-ai/go-randgen/entropy"
	"github.com/opd-ai/go-randgen/internal"
	"github.com/opd-ai/go-randgen/internal/logging"
)

var logger = logging.GetLogger("randgen")

// Algorithm selects a generator.
type Algorithm int

const (
	// ChaCha20Algorithm is the cryptographic keystream generator.
	ChaCha20Algorithm Algorithm = iota
	// SplitMix64Algorithm is SplitMix64.
	SplitMix64Algorithm
	// Xoroshiro1024Algorithm is xoroshiro1024++.
	Xoroshiro1024Algorithm
	// Xorshift128PlusV1Algorithm is xorshift128+ with shifts (23, 17, 26).
	Xorshift128PlusV1Algorithm
	// Xorshift128PlusV2Algorithm is xorshift128+ with shifts (23, 18, 5).
	Xorshift128PlusV2Algorithm
	// Romu32x4Algorithm is RomuQuad32.
	Romu32x4Algorithm
	// AESMixAlgorithm is the AES-128 column mixer.
	AESMixAlgorithm
	// Blake2bChainAlgorithm is the Blake2b-512 hash chain.
	Blake2bChainAlgorithm
)

var algorithmNames = map[Algorithm]string{
	ChaCha20Algorithm:          "chacha20",
	SplitMix64Algorithm:        "splitmix64",
	Xoroshiro1024Algorithm:     "xoroshiro1024",
	Xorshift128PlusV1Algorithm: "xorshift128plus-v1",
	Xorshift128PlusV2Algorithm: "xorshift128plus-v2",
	Romu32x4Algorithm:          "romu32x4",
	AESMixAlgorithm:            "aesmix",
	Blake2bChainAlgorithm:      "blake2bchain",
}

// seedSizes is the number of seed bytes each algorithm consumes.
var seedSizes = map[Algorithm]int{
	ChaCha20Algorithm:          ChaCha20KeySize,
	SplitMix64Algorithm:        8,
	Xoroshiro1024Algorithm:     128,
	Xorshift128PlusV1Algorithm: 16,
	Xorshift128PlusV2Algorithm: 16,
	Romu32x4Algorithm:          16,
	AESMixAlgorithm:            AESMixSeedSize,
	Blake2bChainAlgorithm:      64,
}

var _ pflag.Value = (*Algorithm)(nil)

// String returns the string representation of the algorithm.
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Set parses s into the algorithm.
func (a *Algorithm) Set(s string) error {
	v, err := ParseAlgorithm(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Type returns the flag type name.
func (a *Algorithm) Type() string {
	return "algorithm"
}

// Cryptographic reports whether the algorithm is suitable for
// security-sensitive use. Only ChaCha20 is.
func (a Algorithm) Cryptographic() bool {
	return a == ChaCha20Algorithm
}

// ParseAlgorithm returns the algorithm with the given name.
func ParseAlgorithm(s string) (Algorithm, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for a, name := range algorithmNames {
		if name == want {
			return a, nil
		}
	}
	return 0, fmt.Errorf("randgen: unknown algorithm: %q", s)
}

// Algorithms returns every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	algs := make([]Algorithm, 0, len(algorithmNames))
	for a := ChaCha20Algorithm; a <= Blake2bChainAlgorithm; a++ {
		algs = append(algs, a)
	}
	return algs
}

// Config specifies how to build a generator.
type Config struct {
	// Algorithm selects the generator.
	Algorithm Algorithm

	// Seed is arbitrary seed material. It is expanded with the Blake2b XOF
	// to the size the algorithm needs, so equal seeds give equal streams.
	// If nil, seed bytes are drawn from Entropy instead.
	Seed []byte

	// Nonce and Counter position the ChaCha20 keystream. They must be zero
	// for every other algorithm.
	Nonce   uint64
	Counter uint64

	// Entropy supplies seed bytes when Seed is nil. Defaults to
	// entropy.Reader.
	Entropy io.Reader
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs *multierror.Error

	if _, ok := algorithmNames[c.Algorithm]; !ok {
		errs = multierror.Append(errs, fmt.Errorf("unknown algorithm: %v", c.Algorithm))
	} else if c.Algorithm != ChaCha20Algorithm {
		if c.Nonce != 0 {
			errs = multierror.Append(errs, fmt.Errorf("nonce is only used by %v", ChaCha20Algorithm))
		}
		if c.Counter != 0 {
			errs = multierror.Append(errs, fmt.Errorf("counter is only used by %v", ChaCha20Algorithm))
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// byteStream is the part of Stream that does not depend on the word type.
type byteStream interface {
	io.Reader
	io.ByteReader
	io.Seeker
	Uint32() uint32
	Uint64() uint64
	Position() (uint64, error)
}

// Rand is a configured generator read as a byte stream. Seeking is only
// supported for ChaCha20; other algorithms return ErrNotSeekable.
type Rand struct {
	alg    Algorithm
	stream byteStream
}

var (
	_ io.Reader     = (*Rand)(nil)
	_ io.ByteReader = (*Rand)(nil)
	_ io.Seeker     = (*Rand)(nil)
)

// New creates a generator from config.
func New(config Config) (*Rand, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	material, err := seedMaterial(&config)
	if err != nil {
		return nil, err
	}
	defer zeroBytes(material)

	r := &Rand{alg: config.Algorithm}
	seed := bytes.NewReader(material)
	switch config.Algorithm {
	case ChaCha20Algorithm:
		g, err := NewChaCha20(seed, config.Nonce, config.Counter)
		if err != nil {
			return nil, err
		}
		r.stream = NewStream[uint32](g)
	case SplitMix64Algorithm:
		g := NewSplitMix64(decodeSeed64(material))
		r.stream = NewStream[uint64](g)
	case Xoroshiro1024Algorithm:
		g, err := NewXoroshiro1024FromReader(seed)
		if err != nil {
			return nil, err
		}
		r.stream = NewStream[uint64](g)
	case Xorshift128PlusV1Algorithm:
		g, err := NewXorshift128PlusV1FromReader(seed)
		if err != nil {
			return nil, err
		}
		r.stream = NewStream[uint64](g)
	case Xorshift128PlusV2Algorithm:
		g, err := NewXorshift128PlusV2FromReader(seed)
		if err != nil {
			return nil, err
		}
		r.stream = NewStream[uint64](g)
	case Romu32x4Algorithm:
		g, err := NewRomu32x4FromReader(seed)
		if err != nil {
			return nil, err
		}
		r.stream = NewStream[uint32](g)
	case AESMixAlgorithm:
		g, err := NewAESMix(material)
		if err != nil {
			return nil, err
		}
		r.stream = NewStream[uint32](g)
	case Blake2bChainAlgorithm:
		r.stream = NewStream[uint64](NewBlake2bChain(material))
	}

	return r, nil
}

// seedMaterial returns the bytes the configured algorithm is seeded from.
func seedMaterial(config *Config) ([]byte, error) {
	n := seedSizes[config.Algorithm]

	if config.Seed != nil {
		if config.Algorithm == Blake2bChainAlgorithm {
			return append([]byte(nil), config.Seed...), nil
		}
		material, err := internal.ExpandSeed(config.Seed, n)
		if err != nil {
			return nil, fmt.Errorf("randgen: %w", err)
		}
		return material, nil
	}

	src := config.Entropy
	if src == nil {
		src = entropy.Reader
	}
	material, err := readSeed(src, n)
	if err != nil {
		return nil, err
	}
	logger.Debug("seeded generator from entropy source",
		"algorithm", config.Algorithm,
		"bytes", n,
	)
	return material, nil
}

func decodeSeed64(b []byte) uint64 {
	var w [1]uint64
	decodeWords64(w[:], b)
	return w[0]
}

// Algorithm returns the configured algorithm.
func (r *Rand) Algorithm() Algorithm {
	return r.alg
}

// Read fills p completely. It always returns len(p), nil.
func (r *Rand) Read(p []byte) (int, error) {
	return r.stream.Read(p)
}

// ReadByte returns the next byte.
func (r *Rand) ReadByte() (byte, error) {
	return r.stream.ReadByte()
}

// Uint32 returns the next four bytes as a little-endian uint32.
func (r *Rand) Uint32() uint32 {
	return r.stream.Uint32()
}

// Uint64 returns the next eight bytes as a little-endian uint64.
func (r *Rand) Uint64() uint64 {
	return r.stream.Uint64()
}

// Seek moves to a byte offset in the stream. See Stream.Seek.
func (r *Rand) Seek(offset int64, whence int) (int64, error) {
	return r.stream.Seek(offset, whence)
}

// Position returns the current byte offset. See Stream.Position.
func (r *Rand) Position() (uint64, error) {
	return r.stream.Position()
}
