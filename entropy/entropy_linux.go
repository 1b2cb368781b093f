//go:build linux

package entropy

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// platformRead fills p with getrandom(2), retrying short reads and EINTR.
func platformRead(p []byte) error {
	for off := 0; off < len(p); {
		n, err := unix.Getrandom(p[off:], 0)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return fmt.Errorf("entropy: getrandom: %w", err)
		}
		off += n
	}
	return nil
}
