package token_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	domain "randstring/internal/domain/token"
	"randstring/internal/service/token"
	"randstring/internal/service/token/mocks"
	"randstring/internal/storage"
	"randstring/pkg/randstring"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// counterSource yields 0, 1, 2, ... wrapping at 256.
type counterSource struct {
	mu   sync.Mutex
	next byte
}

func (s *counterSource) FillRandom(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range p {
		p[i] = s.next
		s.next++
	}
	return nil
}

type brokenSource struct{}

func (brokenSource) FillRandom(_ []byte) error {
	return randstring.ErrEntropyUnavailable
}

func intPtr(v int) *int {
	return &v
}

func newService(t *testing.T, recorder token.IssuanceRecorder, src randstring.ByteSource) *token.Service {
	t.Helper()

	svc, err := token.New(slog.New(slog.NewTextHandler(io.Discard, nil)), recorder, token.Options{
		DefaultAlphabet: randstring.PresetURLSafe,
		DefaultLength:   22,
		MaxLength:       64,
		MaxCount:        10,
		Source:          src,
	})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, svc.Close()) })

	return svc
}

func TestService_Issue(t *testing.T) {
	cases := []struct {
		name       string
		req        domain.IssueRequest
		want       storage.Issuance
		wantTokens []string
	}{
		{
			name:       "Defaults",
			req:        domain.IssueRequest{},
			want:       storage.Issuance{Alphabet: "urlsafe", Length: 22, Count: 1},
			wantTokens: []string{"ABCDEFGHIJKLMNOPQRSTUV"},
		},
		{
			name:       "Hex preset with subject",
			req:        domain.IssueRequest{Alphabet: "hex", Length: intPtr(4), Count: 2, Subject: "svc-a"},
			want:       storage.Issuance{Alphabet: "hex", Length: 4, Count: 2, Subject: "svc-a"},
			wantTokens: []string{"0123", "4567"},
		},
		{
			name:       "Custom characters",
			req:        domain.IssueRequest{Characters: "AB", Length: intPtr(5), Count: 2},
			want:       storage.Issuance{Alphabet: "custom", Length: 5, Count: 2},
			wantTokens: []string{"ABABA", "BABAB"},
		},
		{
			name:       "Zero length",
			req:        domain.IssueRequest{Alphabet: "numeric", Length: intPtr(0), Count: 3},
			want:       storage.Issuance{Alphabet: "numeric", Length: 0, Count: 3},
			wantTokens: []string{"", "", ""},
		},
		{
			name:       "Unbiased numeric",
			req:        domain.IssueRequest{Alphabet: "numeric", Length: intPtr(10), Unbiased: true},
			want:       storage.Issuance{Alphabet: "numeric", Length: 10, Count: 1, Unbiased: true},
			wantTokens: []string{"0123456789"},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			recorder := mocks.NewMockIssuanceRecorder(t)
			recorder.On("SaveIssuance", mock.Anything, tc.want).
				Return(int64(42), nil).
				Once()

			svc := newService(t, recorder, &counterSource{})

			issued, err := svc.Issue(context.Background(), tc.req)
			require.NoError(t, err)

			require.Equal(t, int64(42), issued.ID)
			require.Equal(t, tc.want.Alphabet, issued.Alphabet)
			require.Equal(t, tc.want.Length, issued.Length)
			require.Equal(t, tc.want.Unbiased, issued.Unbiased)
			require.Equal(t, tc.wantTokens, issued.Tokens)
		})
	}
}

func TestService_IssueRejected(t *testing.T) {
	cases := []struct {
		name    string
		req     domain.IssueRequest
		wantErr error
	}{
		{
			name:    "Unknown alphabet",
			req:     domain.IssueRequest{Alphabet: "base32"},
			wantErr: domain.ErrUnknownAlphabet,
		},
		{
			name:    "Alphabet and characters",
			req:     domain.IssueRequest{Alphabet: "hex", Characters: "abc"},
			wantErr: domain.ErrAlphabetConflict,
		},
		{
			name:    "Duplicate custom characters",
			req:     domain.IssueRequest{Characters: "aa"},
			wantErr: domain.ErrInvalidAlphabet,
		},
		{
			name:    "Negative length",
			req:     domain.IssueRequest{Length: intPtr(-1)},
			wantErr: randstring.ErrInvalidLength,
		},
		{
			name:    "Length above maximum",
			req:     domain.IssueRequest{Length: intPtr(65)},
			wantErr: domain.ErrLengthTooLarge,
		},
		{
			name:    "Negative count",
			req:     domain.IssueRequest{Count: -1},
			wantErr: domain.ErrCountOutOfRange,
		},
		{
			name:    "Count above maximum",
			req:     domain.IssueRequest{Count: 11},
			wantErr: domain.ErrCountOutOfRange,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			recorder := mocks.NewMockIssuanceRecorder(t)
			svc := newService(t, recorder, &counterSource{})

			issued, err := svc.Issue(context.Background(), tc.req)
			require.ErrorIs(t, err, tc.wantErr)
			require.Empty(t, issued.Tokens)
			recorder.AssertNotCalled(t, "SaveIssuance", mock.Anything, mock.Anything)
		})
	}
}

func TestService_IssueEntropyUnavailable(t *testing.T) {
	recorder := mocks.NewMockIssuanceRecorder(t)
	svc := newService(t, recorder, brokenSource{})

	issued, err := svc.Issue(context.Background(), domain.IssueRequest{Count: 3})
	require.ErrorIs(t, err, randstring.ErrEntropyUnavailable)
	require.Empty(t, issued.Tokens)
	recorder.AssertNotCalled(t, "SaveIssuance", mock.Anything, mock.Anything)
}

func TestService_IssueRecorderFails(t *testing.T) {
	recorder := mocks.NewMockIssuanceRecorder(t)
	recorder.On("SaveIssuance", mock.Anything, mock.AnythingOfType("storage.Issuance")).
		Return(int64(0), errors.New("disk full")).
		Once()

	svc := newService(t, recorder, &counterSource{})

	issued, err := svc.Issue(context.Background(), domain.IssueRequest{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to record issuance")
	require.Empty(t, issued.Tokens)
}

func TestService_IssueCryptoSource(t *testing.T) {
	recorder := mocks.NewMockIssuanceRecorder(t)
	recorder.On("SaveIssuance", mock.Anything, mock.AnythingOfType("storage.Issuance")).
		Return(int64(1), nil).
		Once()

	svc := newService(t, recorder, nil)

	issued, err := svc.Issue(context.Background(), domain.IssueRequest{Count: 10})
	require.NoError(t, err)
	require.Len(t, issued.Tokens, 10)

	for _, tok := range issued.Tokens {
		require.Len(t, tok, 22)
		for _, r := range tok {
			require.True(t, strings.ContainsRune(randstring.URLSafe, r))
		}
	}
}

func TestService_Alphabets(t *testing.T) {
	svc := newService(t, mocks.NewMockIssuanceRecorder(t), nil)

	infos := svc.Alphabets()
	require.Len(t, infos, 4)

	byName := make(map[string]domain.AlphabetInfo, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
	}

	require.True(t, byName["urlsafe"].Default)
	require.True(t, byName["urlsafe"].Uniform)
	require.Equal(t, 64, byName["urlsafe"].Size)
	require.False(t, byName["numeric"].Uniform)
	require.Equal(t, 6, byName["numeric"].Bias.Favored)
	require.False(t, byName["hex"].Default)
}

func TestService_Stats(t *testing.T) {
	want := []storage.AlphabetStats{{Alphabet: "hex", Requests: 2, Tokens: 4, Chars: 64}}

	recorder := mocks.NewMockIssuanceRecorder(t)
	recorder.On("Stats", mock.Anything).Return(want, nil).Once()

	svc := newService(t, recorder, nil)

	got, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestNew_UnknownDefault(t *testing.T) {
	_, err := token.New(slog.New(slog.NewTextHandler(io.Discard, nil)), nil, token.Options{
		DefaultAlphabet: "base32",
	})
	require.ErrorIs(t, err, domain.ErrUnknownAlphabet)
}
