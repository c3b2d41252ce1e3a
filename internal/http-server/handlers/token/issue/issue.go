package issue

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	domain "randstring/internal/domain/token"
	"randstring/internal/http-server/middleware/auth"
	resp "randstring/internal/lib/api/response"
	"randstring/internal/lib/logger/sl"
	"randstring/internal/lib/metrics"
	"randstring/pkg/randstring"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Alphabet   string `json:"alphabet,omitempty" validate:"omitempty,excluded_with=Characters"`
	Characters string `json:"characters,omitempty"`
	Length     *int   `json:"length,omitempty"`
	Count      int    `json:"count,omitempty" validate:"gte=0"`
	Unbiased   bool   `json:"unbiased,omitempty"`
}

type Response struct {
	resp.Response
	IssuanceID int64    `json:"issuance_id,omitempty"`
	Alphabet   string   `json:"alphabet,omitempty"`
	Length     int      `json:"length,omitempty"`
	Unbiased   bool     `json:"unbiased,omitempty"`
	Tokens     []string `json:"tokens,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v3
type TokenIssuer interface {
	Issue(ctx context.Context, req domain.IssueRequest) (domain.Issued, error)
}

var validate = validator.New()

func New(log *slog.Logger, issuer TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.token.issue.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render(log, w, http.StatusBadRequest, resp.Error("invalid request body"))
			return
		}

		log.Debug("request decoded", slog.Any("req", req))

		if err := validate.Struct(req); err != nil {
			log.Info("invalid request", sl.Err(err))
			render(log, w, http.StatusBadRequest, resp.ValidationError(err))
			return
		}

		// Subject is absent when auth is disabled.
		subject, _ := auth.GetSubject(r.Context())

		issued, err := issuer.Issue(r.Context(), domain.IssueRequest{
			Alphabet:   req.Alphabet,
			Characters: req.Characters,
			Length:     req.Length,
			Count:      req.Count,
			Unbiased:   req.Unbiased,
			Subject:    subject,
		})
		if err != nil {
			status, msg := errorStatus(err)
			if status == http.StatusBadRequest {
				log.Info("request rejected", sl.Err(err))
			} else {
				log.Error("failed to issue tokens", sl.Err(err))
			}
			render(log, w, status, resp.Error(msg))
			return
		}

		log.Info("tokens issued",
			slog.Int64("issuance_id", issued.ID),
			slog.String("alphabet", issued.Alphabet),
			slog.Int("count", len(issued.Tokens)),
		)

		metrics.TokensIssuedTotal.WithLabelValues(issued.Alphabet).Add(float64(len(issued.Tokens)))

		render(log, w, http.StatusOK, Response{
			Response:   resp.OK(),
			IssuanceID: issued.ID,
			Alphabet:   issued.Alphabet,
			Length:     issued.Length,
			Unbiased:   issued.Unbiased,
			Tokens:     issued.Tokens,
		})
	}
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUnknownAlphabet):
		return http.StatusBadRequest, "unknown alphabet"
	case errors.Is(err, domain.ErrAlphabetConflict):
		return http.StatusBadRequest, "alphabet and characters are mutually exclusive"
	case errors.Is(err, domain.ErrInvalidAlphabet),
		errors.Is(err, randstring.ErrEmptyAlphabet),
		errors.Is(err, randstring.ErrAlphabetTooLarge):
		return http.StatusBadRequest, "invalid alphabet"
	case errors.Is(err, randstring.ErrInvalidLength), errors.Is(err, domain.ErrLengthTooLarge):
		return http.StatusBadRequest, "invalid length"
	case errors.Is(err, domain.ErrCountOutOfRange):
		return http.StatusBadRequest, "invalid count"
	case errors.Is(err, randstring.ErrEntropyUnavailable):
		return http.StatusServiceUnavailable, "entropy unavailable"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func render(log *slog.Logger, w http.ResponseWriter, status int, v any) {
	if err := resp.RenderJSON(w, status, v); err != nil {
		log.Error("failed to render JSON response", sl.Err(err))
	}
}
