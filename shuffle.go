package randgen

import (
	"fmt"
	"io"
)

// Shuffle permutes items in place with the Fisher–Yates algorithm, drawing
// from src. Every permutation is equally likely given uniform input.
// Slices of length 0 or 1 are left alone and nothing is read from src.
//
// If src fails part way through, items is left partially shuffled (still a
// permutation of the input) and the error is returned.
func Shuffle[T any](items []T, src io.Reader) error {
	n := uint64(len(items))
	if n <= 1 {
		return nil
	}
	if n > MaxBound {
		return fmt.Errorf("%w: cannot shuffle %d elements", ErrInvalidBound, n)
	}

	var r Range
	for off := uint64(0); off < n-1; off++ {
		if err := r.Reset(n - off); err != nil {
			return err
		}
		i, err := r.Draw(src)
		if err != nil {
			return err
		}
		if i != 0 {
			j := off + uint64(i)
			items[off], items[j] = items[j], items[off]
		}
	}
	return nil
}
