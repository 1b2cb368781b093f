// Package entropy supplies seed material from the operating system.
//
// Reader is the platform randomness source. On Linux it calls getrandom(2)
// directly and loops until the buffer is full; elsewhere it defers to
// crypto/rand. The randgen generators never retry a failed seed read;
// callers that want a retry policy wrap a source with NewRetryReader.
package entropy

import (
	"io"

	"github.com/opd-ai/go-randgen/internal/logging"
)

var logger = logging.GetLogger("randgen/entropy")

// Reader is the system randomness source. A Read either fills the buffer
// completely or fails.
var Reader io.Reader = osReader{}

type osReader struct{}

func (osReader) Read(p []byte) (int, error) {
	if err := platformRead(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Read fills p from Reader.
func Read(p []byte) error {
	_, err := io.ReadFull(Reader, p)
	return err
}
