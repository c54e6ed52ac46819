package getTrendingArtists

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"artistBooker/internal/catalog/deezer"
	"artistBooker/internal/lib/api/response"
	"artistBooker/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TrendingGetter
type TrendingGetter interface {
	GetTrendingArtists(ctx context.Context, limit, index, genreID int) (json.RawMessage, error)
}

func New(log *slog.Logger, getter TrendingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.getTrendingArtists.New"

		log = log.With(slog.String("op", op))

		limit := deezer.DefaultLimit
		index := deezer.DefaultIndex
		genreID := 0

		for _, param := range []struct {
			name string
			min  int
			dst  *int
		}{
			{"limit", 1, &limit},
			{"index", 0, &index},
			{"genre_id", 0, &genreID},
		} {
			raw := r.URL.Query().Get(param.name)
			if raw == "" {
				continue
			}

			v, err := strconv.Atoi(raw)
			if err != nil || v < param.min {
				log.Error("invalid query parameter", slog.String(param.name, raw))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid "+param.name))
				return
			}
			*param.dst = v
		}

		result, err := getter.GetTrendingArtists(r.Context(), limit, index, genreID)
		if err != nil {
			log.Error("failed to get trending artists", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to reach artist catalog"))
			return
		}

		log.Info("trending artists retrieved", slog.Int("genre_id", genreID))

		render.JSON(w, r, result)
	}
}
