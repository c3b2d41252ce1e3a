package token

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"randstring/pkg/randstring"
)

// CustomAlphabet is the name issuances over caller-supplied characters are recorded under.
const CustomAlphabet = "custom"

// MaxCustomAlphabet bounds caller-supplied alphabets; the modulo reduction cannot reach
// characters beyond the 256th.
const MaxCustomAlphabet = 256

var (
	// ErrUnknownAlphabet indicates that no preset is registered under the requested name
	ErrUnknownAlphabet = errors.New("unknown alphabet")
	// ErrAlphabetConflict indicates that both a preset name and custom characters were given
	ErrAlphabetConflict = errors.New("alphabet and characters are mutually exclusive")
	// ErrInvalidAlphabet indicates that custom characters are unusable
	ErrInvalidAlphabet = errors.New("invalid alphabet")
	// ErrLengthTooLarge indicates that the requested length exceeds the configured maximum
	ErrLengthTooLarge = errors.New("length exceeds maximum")
	// ErrCountOutOfRange indicates that the requested number of tokens is not allowed
	ErrCountOutOfRange = errors.New("count out of range")
)

// IssueRequest asks for Count tokens of Length characters.
type IssueRequest struct {
	// Alphabet is a preset name; empty selects the configured default.
	Alphabet string
	// Characters is a custom alphabet, exclusive with Alphabet.
	Characters string
	// Length nil selects the configured default.
	Length   *int
	Count    int
	Unbiased bool
	Subject  string
}

type Issued struct {
	ID       int64
	Alphabet string
	Length   int
	Unbiased bool
	Tokens   []string
}

type AlphabetInfo struct {
	Name       string                `json:"name"`
	Characters string                `json:"characters"`
	Size       int                   `json:"size"`
	Uniform    bool                  `json:"uniform"`
	Bias       randstring.BiasReport `json:"bias"`
	Default    bool                  `json:"default"`
}

// ValidateAlphabet checks caller-supplied characters: valid UTF-8, no control or
// whitespace characters, no duplicates and at most MaxCustomAlphabet characters.
func ValidateAlphabet(chars string) error {
	if chars == "" {
		return randstring.ErrEmptyAlphabet
	}

	if !utf8.ValidString(chars) {
		return ErrInvalidAlphabet
	}

	if utf8.RuneCountInString(chars) > MaxCustomAlphabet {
		return randstring.ErrAlphabetTooLarge
	}

	seen := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return ErrInvalidAlphabet
		}
		if _, ok := seen[r]; ok {
			return ErrInvalidAlphabet
		}
		seen[r] = struct{}{}
	}

	return nil
}
