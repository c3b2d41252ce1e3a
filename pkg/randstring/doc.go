// Package randstring generates random strings of a requested length drawn from a fixed
// alphabet, using a cryptographically secure byte source.
//
// Each output character consumes exactly one random byte b and is chosen as
// alphabet[b % len(alphabet)]. When len(alphabet) does not divide 256 this reduction is
// biased: the first 256%len(alphabet) characters are slightly more likely than the rest.
// The 64-character URLSafe alphabet divides 256 evenly and is therefore unbiased. Use
// Bias to inspect the distribution of any alphabet size, or WithUnbiased to opt in to
// rejection sampling instead.
//
// Random is not unique: nothing here remembers or deduplicates generated strings.
package randstring
