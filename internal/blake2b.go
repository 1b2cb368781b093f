// Package internal provides the hashing and block cipher primitives shared by
// the randgen generators.
// This package wraps golang.org/x/crypto and crypto/* packages.
package internal

import (
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

// maxXOFLength is one less than the XOF's reserved "unknown length" value.
const maxXOFLength = 1<<32 - 2

// seedDomain keys the seed expansion XOF so expanded seeds never collide with
// plain Blake2b digests of the same material.
var seedDomain = []byte("randgen seed expansion v1")

// Blake2b512 computes a 512-bit Blake2b hash (64 bytes).
func Blake2b512(data []byte) [64]byte {
	return blake2b.Sum512(data)
}

// ExpandSeed stretches arbitrary seed material into exactly n bytes using the
// Blake2b XOF. The same material always expands to the same bytes, and a
// shorter expansion is not a prefix of a longer one.
func ExpandSeed(material []byte, n int) ([]byte, error) {
	if n <= 0 || uint64(n) > maxXOFLength {
		return nil, fmt.Errorf("seed expansion: invalid output length %d", n)
	}

	xof, err := blake2b.NewXOF(uint32(n), seedDomain)
	if err != nil {
		return nil, fmt.Errorf("seed expansion: %w", err)
	}
	if _, err = xof.Write(material); err != nil {
		return nil, fmt.Errorf("seed expansion: %w", err)
	}

	out := make([]byte, n)
	if _, err = io.ReadFull(xof, out); err != nil {
		return nil, fmt.Errorf("seed expansion: %w", err)
	}
	return out, nil
}
