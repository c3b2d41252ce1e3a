package auth_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"randstring/internal/http-server/middleware/auth"
	"randstring/internal/lib/jwt"

	"github.com/stretchr/testify/require"
)

type stubValidator map[string]*jwt.ClientClaims

func (v stubValidator) Validate(token string) (*jwt.ClientClaims, error) {
	claims, ok := v[token]
	if !ok {
		return nil, errors.New("bad token")
	}
	return claims, nil
}

func TestAuth(t *testing.T) {
	validator := stubValidator{
		"issuer": func() *jwt.ClientClaims {
			c := &jwt.ClientClaims{Scope: jwt.ScopeIssue}
			c.Subject = "svc-a"
			return c
		}(),
		"reader": func() *jwt.ClientClaims {
			c := &jwt.ClientClaims{Scope: "stats:read"}
			c.Subject = "svc-b"
			return c
		}(),
	}

	cases := []struct {
		name        string
		header      string
		statusCode  int
		wantSubject string
	}{
		{name: "Valid token", header: "Bearer issuer", statusCode: http.StatusOK, wantSubject: "svc-a"},
		{name: "Missing header", header: "", statusCode: http.StatusUnauthorized},
		{name: "Wrong scheme", header: "Basic issuer", statusCode: http.StatusUnauthorized},
		{name: "Invalid token", header: "Bearer forged", statusCode: http.StatusUnauthorized},
		{name: "Missing scope", header: "Bearer reader", statusCode: http.StatusForbidden},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var gotSubject string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotSubject, _ = auth.GetSubject(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			mw := auth.New(slog.New(slog.NewTextHandler(io.Discard, nil)), validator, jwt.ScopeIssue)

			req := httptest.NewRequest(http.MethodPost, "/tokens", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			rr := httptest.NewRecorder()
			mw(next).ServeHTTP(rr, req)

			require.Equal(t, tc.statusCode, rr.Code)
			require.Equal(t, tc.wantSubject, gotSubject)
		})
	}
}
