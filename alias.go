package randgen

import (
	"fmt"
	"io"
	"math"

	"github.com/hashicorp/go-multierror"
)

// distributionTolerance is how far the input probabilities may sum from 1.
const distributionTolerance = 1e-6

type aliasEntry struct {
	prob  float64
	alias uint32
}

// AliasTable samples from a discrete distribution in O(1) per draw using
// Vose's alias method. It is immutable once built and may be shared by
// readers; the sources passed to Sample are not.
type AliasTable struct {
	entries []aliasEntry
	slots   Range // threshold precomputed; copied per Sample
}

type aliasWork struct {
	scaled float64
	index  uint32
}

// NewAliasTable builds a table for probs. The vector must be non-empty, hold
// only finite non-negative values and sum to 1 within 1e-6; otherwise an
// error wrapping ErrInvalidDistribution lists every problem found.
func NewAliasTable(probs []float64) (*AliasTable, error) {
	if err := validateDistribution(probs); err != nil {
		logger.Debug("rejected alias table input", "outcomes", len(probs), "err", err)
		return nil, err
	}

	n := len(probs)
	scale := float64(n)
	small := make([]aliasWork, 0, n)
	large := make([]aliasWork, 0, n)
	for k, p := range probs {
		w := aliasWork{scaled: p * scale, index: uint32(k)}
		if w.scaled < 1 {
			small = append(small, w)
		} else {
			large = append(large, w)
		}
	}

	entries := make([]aliasEntry, n)
	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		entries[s.index] = aliasEntry{prob: s.scaled, alias: l.index}

		l.scaled -= 1 - s.scaled
		if l.scaled < 1 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}
	// Whatever is left is 1 up to rounding error.
	for _, w := range large {
		entries[w.index] = aliasEntry{prob: 1, alias: w.index}
	}
	for _, w := range small {
		entries[w.index] = aliasEntry{prob: 1, alias: w.index}
	}

	slots, err := NewRange(uint64(n))
	if err != nil {
		return nil, err
	}
	slots.threshold()

	return &AliasTable{entries: entries, slots: *slots}, nil
}

func validateDistribution(probs []float64) error {
	if len(probs) == 0 {
		return fmt.Errorf("%w: no outcomes", ErrInvalidDistribution)
	}
	if uint64(len(probs)) > MaxBound {
		return fmt.Errorf("%w: %d outcomes exceeds 2^32", ErrInvalidDistribution, len(probs))
	}

	var (
		errs *multierror.Error
		sum  float64
	)
	for i, p := range probs {
		switch {
		case math.IsNaN(p) || math.IsInf(p, 0):
			errs = multierror.Append(errs, fmt.Errorf("probability %d is %v", i, p))
		case p < 0:
			errs = multierror.Append(errs, fmt.Errorf("probability %d is negative: %v", i, p))
		default:
			sum += p
		}
	}
	if errs == nil && math.Abs(sum-1) > distributionTolerance {
		errs = multierror.Append(errs, fmt.Errorf("probabilities sum to %v, not 1", sum))
	}
	if err := errs.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDistribution, err)
	}
	return nil
}

// Len returns the number of outcomes.
func (t *AliasTable) Len() int {
	return len(t.entries)
}

// Sample draws an outcome index in [0, Len()) from src: one uniform slot and
// one uniform real in [0, 1) to choose between the slot and its alias.
func (t *AliasTable) Sample(src io.Reader) (int, error) {
	r := t.slots
	k, err := r.Draw(src)
	if err != nil {
		return 0, err
	}
	x, err := Float64(src)
	if err != nil {
		return 0, err
	}

	e := t.entries[k]
	if x < e.prob {
		return int(k), nil
	}
	return int(e.alias), nil
}

// Float64 returns a uniform float64 in [0, 1) built from the top 53 bits of
// a little-endian 64-bit word read from src.
func Float64(src io.Reader) (float64, error) {
	u, err := readUint64(src)
	if err != nil {
		return 0, err
	}
	return float64(u>>11) * 0x1p-53, nil
}
