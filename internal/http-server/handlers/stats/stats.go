package stats

import (
	"context"
	"log/slog"
	"net/http"

	resp "randstring/internal/lib/api/response"
	"randstring/internal/lib/logger/sl"
	"randstring/internal/storage"

	"github.com/go-chi/chi/v5/middleware"
)

type Response struct {
	resp.Response
	Alphabets []storage.AlphabetStats `json:"alphabets"`
}

//go:generate go run github.com/vektra/mockery/v3
type StatsProvider interface {
	Stats(ctx context.Context) ([]storage.AlphabetStats, error)
}

func New(log *slog.Logger, provider StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.stats.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		stats, err := provider.Stats(r.Context())
		if err != nil {
			log.Error("failed to load stats", sl.Err(err))
			err = resp.RenderJSON(w, http.StatusInternalServerError, resp.Error("internal error"))
			if err != nil {
				log.Error("failed to render JSON response", sl.Err(err))
			}
			return
		}

		if stats == nil {
			stats = []storage.AlphabetStats{}
		}

		err = resp.RenderJSON(w, http.StatusOK, Response{
			Response:  resp.OK(),
			Alphabets: stats,
		})
		if err != nil {
			log.Error("failed to render JSON response", sl.Err(err))
		}
	}
}
