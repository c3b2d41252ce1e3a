package main

import (
	"bytes"
	"strings"
	"testing"

	"randstring/pkg/randstring"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var out, diag bytes.Buffer

	err := run(&out, &diag, params{alphabet: randstring.PresetHex, length: 8, count: 3, showBias: true})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		require.Regexp(t, `^[0-9a-f]{8}$`, l)
	}
	require.Contains(t, diag.String(), "uniform=true")
}

func TestRun_CustomUnbiased(t *testing.T) {
	var out, diag bytes.Buffer

	err := run(&out, &diag, params{characters: "xyz", length: 5, count: 1, unbiased: true})
	require.NoError(t, err)
	require.Regexp(t, `^[xyz]{5}\n$`, out.String())
	require.Empty(t, diag.String())
}

func TestRun_Errors(t *testing.T) {
	var out, diag bytes.Buffer

	require.Error(t, run(&out, &diag, params{alphabet: "base32", length: 4, count: 1}))
	require.ErrorIs(t, run(&out, &diag, params{alphabet: randstring.PresetHex, length: -1, count: 1}), randstring.ErrInvalidLength)
	require.Empty(t, out.String())
}
