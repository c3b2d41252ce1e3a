package jwt

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ScopeIssue grants access to token issuance.
const ScopeIssue = "tokens:issue"

type ClientClaims struct {
	// Scope is a space separated list, as in OAuth2 access tokens.
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

func (c *ClientClaims) HasScope(scope string) bool {
	for _, s := range strings.Fields(c.Scope) {
		if s == scope {
			return true
		}
	}
	return false
}
