package instrumented_test

import (
	"errors"
	"testing"

	"randstring/internal/generator/instrumented"
	"randstring/internal/lib/metrics"
	"randstring/pkg/randstring"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	err    error
	closed bool
}

func (g *stubGenerator) Generate(length int) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = 'x'
	}
	return string(b), nil
}

func (g *stubGenerator) Close() error {
	g.closed = true
	return nil
}

func TestGenerator_RecordsSuccess(t *testing.T) {
	const label = "instrumented_success"

	g := instrumented.New(&stubGenerator{}, label)

	got, err := g.Generate(12)
	require.NoError(t, err)
	require.Equal(t, "xxxxxxxxxxxx", got)

	require.Equal(t, 1.0, testutil.ToFloat64(metrics.GenerationsTotal.WithLabelValues(label, "success")))
	require.Equal(t, 12.0, testutil.ToFloat64(metrics.GeneratedCharsTotal.WithLabelValues(label)))
}

func TestGenerator_RecordsError(t *testing.T) {
	const label = "instrumented_error"

	g := instrumented.New(&stubGenerator{err: randstring.ErrEntropyUnavailable}, label)

	_, err := g.Generate(4)
	require.True(t, errors.Is(err, randstring.ErrEntropyUnavailable))

	require.Equal(t, 1.0, testutil.ToFloat64(metrics.GenerationsTotal.WithLabelValues(label, "error")))
	require.Equal(t, 0.0, testutil.ToFloat64(metrics.GeneratedCharsTotal.WithLabelValues(label)))
}

func TestGenerator_Close(t *testing.T) {
	stub := &stubGenerator{}
	g := instrumented.New(stub, "instrumented_close")

	require.NoError(t, g.Close())
	require.True(t, stub.closed)
}
