package randstring

import (
	"fmt"
	"io"
	"math"
	"sync"
	"sync/atomic"
)

// Generator produces random strings of a requested length.
type Generator interface {
	Generate(length int) (string, error)
}

const (
	// byteRange is the number of distinct values a random byte can take.
	byteRange = 256

	// maxBufLen caps a single refill in rejection sampling.
	maxBufLen = 2048
	// minRegenBufLen is the smallest refill requested after the first read fell short.
	minRegenBufLen = 16
)

// Sampler maps random bytes onto a fixed alphabet. It is safe for concurrent use when its
// ByteSource is, which holds for the default crypto source.
type Sampler struct {
	alphabet []rune
	source   ByteSource
	unbiased bool

	// owned is the source to release on Close; nil for a shared source.
	owned     io.Closer
	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

var _ Generator = (*Sampler)(nil)

type options struct {
	source   ByteSource
	unbiased bool
}

// Option configures a Sampler.
type Option func(*options)

// WithSource binds the sampler to a caller-provided source. The source is shared:
// closing the sampler does not close it.
func WithSource(source ByteSource) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithUnbiased switches the sampler to rejection sampling, discarding bytes that would
// favor part of the alphabet. Output then consumes a variable number of random bytes.
func WithUnbiased() Option {
	return func(o *options) {
		o.unbiased = true
	}
}

// NewSampler returns a sampler over the characters of alphabet. Unless WithSource is
// given, the sampler creates and owns a crypto/rand source and releases it on Close.
func NewSampler(alphabet string, opts ...Option) (*Sampler, error) {
	const op = "randstring.NewSampler"

	chars := []rune(alphabet)
	if len(chars) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyAlphabet)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.unbiased && len(chars) > byteRange {
		return nil, fmt.Errorf("%s: %d characters: %w", op, len(chars), ErrAlphabetTooLarge)
	}

	s := &Sampler{
		alphabet: chars,
		source:   o.source,
		unbiased: o.unbiased,
	}

	if s.source == nil {
		src := NewCryptoSource()
		s.source = src
		s.owned = src
	}

	return s, nil
}

// Generate returns a string of exactly length characters from the sampler's alphabet.
// A zero length yields the empty string without touching the source. Source failures are
// returned as-is (wrapping ErrEntropyUnavailable) and never retried.
func (s *Sampler) Generate(length int) (string, error) {
	const op = "randstring.Sampler.Generate"

	if length < 0 {
		return "", fmt.Errorf("%s: %d: %w", op, length, ErrInvalidLength)
	}

	if s.closed.Load() {
		return "", fmt.Errorf("%s: %w", op, ErrClosed)
	}

	if length == 0 {
		return "", nil
	}

	var (
		out []rune
		err error
	)

	if s.unbiased && byteRange%len(s.alphabet) != 0 {
		out, err = s.rejectionSample(length)
	} else {
		out, err = s.moduloSample(length)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(out), nil
}

// moduloSample draws length bytes in one call and reduces each modulo the alphabet size.
func (s *Sampler) moduloSample(length int) ([]rune, error) {
	buf := make([]byte, length)
	if err := s.source.FillRandom(buf); err != nil {
		return nil, err
	}

	size := len(s.alphabet)
	out := make([]rune, length)
	for i, b := range buf {
		out[i] = s.alphabet[int(b)%size]
	}

	return out, nil
}

// rejectionSample accepts only bytes below the largest multiple of the alphabet size
// that fits in a byte.
func (s *Sampler) rejectionSample(length int) ([]rune, error) {
	size := len(s.alphabet)
	limit := byteRange - byteRange%size

	bufLen := estimatedBufLen(length, limit)
	if bufLen < length {
		bufLen = length
	}
	if bufLen > maxBufLen {
		bufLen = maxBufLen
	}

	buf := make([]byte, bufLen)
	out := make([]rune, length)

	var i int
	for {
		if err := s.source.FillRandom(buf[:bufLen]); err != nil {
			return nil, err
		}

		for _, b := range buf[:bufLen] {
			if int(b) >= limit {
				continue
			}
			out[i] = s.alphabet[int(b)%size]
			i++
			if i == length {
				return out, nil
			}
		}

		bufLen = estimatedBufLen(length-i, limit)
		if bufLen < minRegenBufLen && minRegenBufLen <= cap(buf) {
			bufLen = minRegenBufLen
		}
		if bufLen > cap(buf) {
			bufLen = cap(buf)
		}
	}
}

// estimatedBufLen returns how many bytes are expected to yield need accepted bytes
// when only values below limit are kept.
func estimatedBufLen(need, limit int) int {
	return int(math.Ceil(float64(need) * byteRange / float64(limit)))
}

// Alphabet returns the characters the sampler draws from.
func (s *Sampler) Alphabet() string {
	return string(s.alphabet)
}

// Size returns the number of characters in the alphabet.
func (s *Sampler) Size() int {
	return len(s.alphabet)
}

// Unbiased reports whether the sampler uses rejection sampling.
func (s *Sampler) Unbiased() bool {
	return s.unbiased
}

// Bias describes the output distribution of this sampler.
func (s *Sampler) Bias() BiasReport {
	if s.unbiased {
		return BiasReport{
			Size:               len(s.alphabet),
			FavoredProbability: 1 / float64(len(s.alphabet)),
			OtherProbability:   1 / float64(len(s.alphabet)),
		}
	}

	return Bias(len(s.alphabet))
}

// Close releases the source the sampler owns. It is safe to call more than once;
// only the first call releases anything.
func (s *Sampler) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		if s.owned != nil {
			s.closeErr = s.owned.Close()
		}
	})

	return s.closeErr
}
