//go:build !linux

package entropy

import (
	"crypto/rand"
	"fmt"
	"io"
)

func platformRead(p []byte) error {
	if _, err := io.ReadFull(rand.Reader, p); err != nil {
		return fmt.Errorf("entropy: crypto/rand: %w", err)
	}
	return nil
}
