package searchArtists

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

// EmptyResult is what an absent query yields without touching upstream.
type EmptyResult struct {
	Data []json.RawMessage `json:"data"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistSearcher
type ArtistSearcher interface {
	SearchArtists(ctx context.Context, query string, limit, index int) (json.RawMessage, error)
}

func New(log *slog.Logger, searcher ArtistSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.searchArtists.New"

		log = log.With(slog.String("op", op))

		query := r.URL.Query().Get("q")
		if query == "" {
			render.JSON(w, r, EmptyResult{Data: []json.RawMessage{}})
			return
		}

		limit, index, ok := paging(w, r, log)
		if !ok {
			return
		}

		result, err := searcher.SearchArtists(r.Context(), query, limit, index)
		if err != nil {
			log.Error("failed to search artists", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to reach artist catalog"))
			return
		}

		log.Info("artists searched", slog.String("query", query))

		render.JSON(w, r, result)
	}
}

// paging reads limit/index query params, answering 400 itself on bad input.
func paging(w http.ResponseWriter, r *http.Request, log *slog.Logger) (limit, index int, ok bool) {
	limit = deezer.DefaultLimit
	index = deezer.DefaultIndex

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			log.Error("invalid limit", slog.String("limit", limitStr))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid limit"))
			return 0, 0, false
		}
	}

	if indexStr := r.URL.Query().Get("index"); indexStr != "" {
		var err error
		index, err = strconv.Atoi(indexStr)
		if err != nil || index < 0 {
			log.Error("invalid index", slog.String("index", indexStr))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid index"))
			return 0, 0, false
		}
	}

	return limit, index, true
}
