package entropy

import (
	"errors"
	"io"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultMaxRetries      = 5
	defaultInitialInterval = 10 * time.Millisecond
	defaultMaxElapsed      = time.Second
)

// Option configures a retrying reader.
type Option func(*retryReader)

// WithBackOff sets the policy used for each Read. newBackOff is called once
// per Read, since backoff policies carry state.
func WithBackOff(newBackOff func() backoff.BackOff) Option {
	return func(rr *retryReader) {
		rr.newBackOff = newBackOff
	}
}

// WithMaxRetries caps the number of retries per Read under the default
// exponential policy.
func WithMaxRetries(n uint64) Option {
	return func(rr *retryReader) {
		rr.maxRetries = n
	}
}

type retryReader struct {
	r          io.Reader
	maxRetries uint64
	newBackOff func() backoff.BackOff
}

// NewRetryReader wraps r so that transient read failures are retried with
// exponential backoff. Each Read fills p completely or fails. End of input
// is permanent and is never retried.
func NewRetryReader(r io.Reader, opts ...Option) io.Reader {
	rr := &retryReader{
		r:          r,
		maxRetries: defaultMaxRetries,
	}
	for _, opt := range opts {
		opt(rr)
	}
	if rr.newBackOff == nil {
		rr.newBackOff = rr.defaultBackOff
	}
	return rr
}

func (rr *retryReader) defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = defaultInitialInterval
	b.MaxElapsedTime = defaultMaxElapsed
	return backoff.WithMaxRetries(b, rr.maxRetries)
}

func (rr *retryReader) Read(p []byte) (int, error) {
	var n int
	op := func() error {
		m, err := io.ReadFull(rr.r, p[n:])
		n += m
		switch {
		case err == nil:
			return nil
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			return backoff.Permanent(err)
		default:
			logger.Warn("entropy read failed, retrying",
				"err", err,
				"have", n,
				"want", len(p),
			)
			return err
		}
	}

	if err := backoff.Retry(op, rr.newBackOff()); err != nil {
		return n, err
	}
	return n, nil
}
