package alphabets

import (
	"log/slog"
	"net/http"

	domain "randstring/internal/domain/token"
	resp "randstring/internal/lib/api/response"
	"randstring/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5/middleware"
)

type Response struct {
	resp.Response
	Alphabets []domain.AlphabetInfo `json:"alphabets"`
}

//go:generate go run github.com/vektra/mockery/v3
type AlphabetLister interface {
	Alphabets() []domain.AlphabetInfo
}

// New lists the preset alphabets together with their modulo bias.
func New(log *slog.Logger, lister AlphabetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.token.alphabets.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		err := resp.RenderJSON(w, http.StatusOK, Response{
			Response:  resp.OK(),
			Alphabets: lister.Alphabets(),
		})
		if err != nil {
			log.Error("failed to render JSON response", sl.Err(err))
		}
	}
}
