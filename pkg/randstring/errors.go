package randstring

import "errors"

var (
	// ErrEmptyAlphabet is returned when a sampler is built over an alphabet with no characters.
	ErrEmptyAlphabet = errors.New("alphabet is empty")
	// ErrInvalidLength is returned when a negative length is requested.
	ErrInvalidLength = errors.New("length must not be negative")
	// ErrEntropyUnavailable wraps any failure of the underlying random source.
	ErrEntropyUnavailable = errors.New("entropy unavailable")
	// ErrAlphabetTooLarge is returned when rejection sampling is requested for more than 256 characters.
	ErrAlphabetTooLarge = errors.New("alphabet exceeds 256 characters")
	// ErrClosed is returned by Generate after the sampler has been closed.
	ErrClosed = errors.New("sampler is closed")
)
