package getAllBookings

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"artistBooker/internal/lib/api/response"
	"artistBooker/internal/lib/logger/sl"
	"artistBooker/internal/models"

	"github.com/go-chi/render"
)

// Response is the pagination envelope for booking listings.
type Response struct {
	Data        []models.Booking `json:"data"`
	CurrentPage int              `json:"current_page"`
	LastPage    int              `json:"last_page"`
	Total       int              `json:"total"`
	PerPage     int              `json:"per_page"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingLister
type BookingLister interface {
	AllBookings(ctx context.Context, search string, page, perPage int) ([]models.Booking, int, error)
}

const defaultPerPage = 10

func New(log *slog.Logger, lister BookingLister, perPage int) http.HandlerFunc {
	if perPage < 1 {
		perPage = defaultPerPage
	}

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getAllBookings.New"

		log = log.With(slog.String("op", op))

		search := r.URL.Query().Get("q")

		page := 1
		if pageStr := r.URL.Query().Get("page"); pageStr != "" {
			var err error
			page, err = strconv.Atoi(pageStr)
			if err != nil || page < 1 {
				log.Error("invalid page number", slog.String("page", pageStr))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid page number"))
				return
			}
		}

		bookings, total, err := lister.AllBookings(r.Context(), search, page, perPage)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		lastPage := (total + perPage - 1) / perPage
		if lastPage < 1 {
			lastPage = 1
		}

		log.Info("bookings retrieved", slog.Int("count", len(bookings)), slog.Int("total", total))

		render.JSON(w, r, Response{
			Data:        bookings,
			CurrentPage: page,
			LastPage:    lastPage,
			Total:       total,
			PerPage:     perPage,
		})
	}
}
