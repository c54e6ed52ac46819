package getArtistInfo

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"artistBooker/internal/lib/api/response"
	"artistBooker/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistGetter
type ArtistGetter interface {
	GetArtist(ctx context.Context, id string) (json.RawMessage, error)
}

func New(log *slog.Logger, getter ArtistGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.getArtistInfo.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("artist id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("artist id is required"))
			return
		}

		log = log.With(slog.String("artist_id", id))

		// Deezer answers 200 with an error object for unknown ids; that
		// body is relayed as-is like every other upstream response.
		result, err := getter.GetArtist(r.Context(), id)
		if err != nil {
			log.Error("failed to get artist", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to reach artist catalog"))
			return
		}

		log.Info("artist retrieved")

		render.JSON(w, r, result)
	}
}
