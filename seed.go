package randgen

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// readSeed reads exactly n bytes of seed material from r. A source that runs
// dry early yields ErrInsufficientSeedData; other errors pass through.
func readSeed(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: need %d bytes: %v", ErrInsufficientSeedData, n, err)
		}
		return nil, fmt.Errorf("randgen: reading seed: %w", err)
	}
	return buf, nil
}

// decodeWords64 parses little-endian 64-bit words from b into dst.
func decodeWords64(dst []uint64, b []byte) {
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint64(b[8*i:])
	}
}

// decodeWords32 parses little-endian 32-bit words from b into dst.
func decodeWords32(dst []uint32, b []byte) {
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
}

// zeroBytes clears a byte slice holding seed material.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
