package randstring

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
)

// ByteSource supplies cryptographically secure random bytes.
type ByteSource interface {
	// FillRandom fills p entirely or returns an error wrapping ErrEntropyUnavailable.
	FillRandom(p []byte) error
}

// CryptoSource is a ByteSource backed by an io.Reader, crypto/rand.Reader by default.
// It is safe for concurrent use when the reader is.
type CryptoSource struct {
	mu     sync.RWMutex
	r      io.Reader
	closed bool
}

// NewCryptoSource returns a source reading from crypto/rand.
func NewCryptoSource() *CryptoSource {
	return NewReaderSource(rand.Reader)
}

// NewReaderSource returns a source reading from r. r must be a cryptographic generator.
func NewReaderSource(r io.Reader) *CryptoSource {
	return &CryptoSource{r: r}
}

func (s *CryptoSource) FillRandom(p []byte) error {
	const op = "randstring.CryptoSource.FillRandom"

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return fmt.Errorf("%s: %w: %w", op, ErrEntropyUnavailable, ErrClosed)
	}

	if _, err := io.ReadFull(s.r, p); err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrEntropyUnavailable, err)
	}

	return nil
}

// Close releases the reader. Closers are closed once; later calls are no-ops.
func (s *CryptoSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if c, ok := s.r.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
