package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"randstring/internal/storage"
	"randstring/internal/storage/sqlite"

	"github.com/stretchr/testify/require"
)

func newStorage(t *testing.T) *sqlite.Storage {
	t.Helper()

	s, err := sqlite.New(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Migrate("migrations"))
	// Second run sees no change.
	require.NoError(t, s.Migrate("migrations"))

	return s
}

func TestStorage_SaveAndStats(t *testing.T) {
	ctx := context.Background()
	s := newStorage(t)

	issuances := []storage.Issuance{
		{Alphabet: "urlsafe", Length: 22, Count: 3, Subject: "alice"},
		{Alphabet: "urlsafe", Length: 10, Count: 1},
		{Alphabet: "hex", Length: 32, Count: 2, Unbiased: true},
	}

	var lastID int64
	for _, iss := range issuances {
		id, err := s.SaveIssuance(ctx, iss)
		require.NoError(t, err)
		require.Greater(t, id, lastID)
		lastID = id
	}

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, []storage.AlphabetStats{
		{Alphabet: "hex", Requests: 1, Tokens: 2, Chars: 64},
		{Alphabet: "urlsafe", Requests: 2, Tokens: 4, Chars: 76},
	}, stats)
}

func TestStorage_StatsEmpty(t *testing.T) {
	stats, err := newStorage(t).Stats(context.Background())
	require.NoError(t, err)
	require.Empty(t, stats)
}

func TestStorage_SaveInvalid(t *testing.T) {
	s := newStorage(t)

	cases := []storage.Issuance{
		{Alphabet: "", Length: 1, Count: 1},
		{Alphabet: "hex", Length: -1, Count: 1},
		{Alphabet: "hex", Length: 4, Count: 0},
	}

	for _, iss := range cases {
		_, err := s.SaveIssuance(context.Background(), iss)
		require.ErrorIs(t, err, storage.ErrInvalidIssuance)
	}
}
