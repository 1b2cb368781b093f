package randgen

import "errors"

var (
	// ErrInsufficientSeedData is returned when a constructor is handed fewer
	// seed bytes than the generator needs.
	ErrInsufficientSeedData = errors.New("randgen: insufficient seed data")

	// ErrInvalidSeek is returned when seeking to a position the generator
	// cannot represent, such as a non block-aligned offset.
	ErrInvalidSeek = errors.New("randgen: invalid seek")

	// ErrNotSeekable is returned when seeking a stream whose generator has no
	// notion of position.
	ErrNotSeekable = errors.New("randgen: generator is not seekable")

	// ErrInvalidBound is returned for a bounded draw with an upper bound of
	// zero or above 2^32.
	ErrInvalidBound = errors.New("randgen: invalid upper bound")

	// ErrInvalidDistribution is returned when an alias table is built from a
	// vector that is not a probability distribution.
	ErrInvalidDistribution = errors.New("randgen: invalid probability distribution")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("randgen: invalid config")
)
