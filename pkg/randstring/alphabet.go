package randstring

import "sort"

const (
	// URLSafe holds the 64 characters that can be embedded in a URL without encoding.
	// 64 divides 256, so sampling from it is unbiased.
	URLSafe = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	// Alphanumeric holds latin letters and digits. 256%62 == 8, so the first 8 characters are favored.
	Alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// Hex holds lowercase hexadecimal digits.
	Hex = "0123456789abcdef"
	// Numeric holds decimal digits. 256%10 == 6, so "0"-"5" are favored.
	Numeric = "0123456789"
)

// Preset names.
const (
	PresetURLSafe      = "urlsafe"
	PresetAlphanumeric = "alphanumeric"
	PresetHex          = "hex"
	PresetNumeric      = "numeric"
)

var presets = map[string]string{
	PresetURLSafe:      URLSafe,
	PresetAlphanumeric: Alphanumeric,
	PresetHex:          Hex,
	PresetNumeric:      Numeric,
}

// Preset returns the alphabet registered under name.
func Preset(name string) (string, bool) {
	alphabet, ok := presets[name]
	return alphabet, ok
}

// PresetNames returns the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// NewURLSafe returns a sampler over the URLSafe alphabet.
func NewURLSafe(opts ...Option) (*Sampler, error) {
	return NewSampler(URLSafe, opts...)
}
