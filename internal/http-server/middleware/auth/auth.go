package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"randstring/internal/lib/jwt"
	"randstring/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5/middleware"
)

type contextKey string

const (
	ContextKeySubject contextKey = "subject"
)

// ClaimsValidator validates a bearer token.
type ClaimsValidator interface {
	Validate(tokenString string) (*jwt.ClientClaims, error)
}

// New requires a bearer token carrying scope and stores its subject in the request context.
func New(log *slog.Logger, validator ClaimsValidator, scope string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		const op = "middleware.auth.New"

		log := log.With(
			slog.String("component", "middleware/auth"),
			slog.String("scope", scope),
		)

		log.Info("auth middleware enabled")

		fn := func(w http.ResponseWriter, r *http.Request) {
			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Warn("missing authorization header")
				http.Error(w, "Unauthorized: missing token", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Warn("invalid authorization header format")
				http.Error(w, "Unauthorized: invalid header format", http.StatusUnauthorized)
				return
			}

			claims, err := validator.Validate(parts[1])
			if err != nil {
				log.Warn("token validation failed", sl.Err(err))
				http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			if !claims.HasScope(scope) {
				log.Warn("missing scope", slog.String("subject", claims.Subject))
				http.Error(w, "Forbidden: missing scope", http.StatusForbidden)
				return
			}

			log.Debug("client authenticated", slog.String("subject", claims.Subject))

			ctx := context.WithValue(r.Context(), ContextKeySubject, claims.Subject)

			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// GetSubject retrieves the authenticated client's subject from the request context.
// Returns the subject and true if found, or empty string and false otherwise.
func GetSubject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(ContextKeySubject).(string)
	return subject, ok
}
