package updateBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"artistBooker/internal/lib/api/response"
	"artistBooker/internal/lib/logger/sl"
	"artistBooker/internal/models"
	"artistBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// Request carries a partial update. Absent fields stay untouched; artist
// fields and the id are immutable and therefore not part of the request.
type Request struct {
	ContractorName *string       `json:"contractor_name" validate:"omitempty,min=3,max=255"`
	EventDate      *models.Date  `json:"event_date"`
	CacheAmount    *models.Money `json:"cache_amount" validate:"omitempty,gte=0"`
	EventAddress   *string       `json:"event_address" validate:"omitempty,max=500"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingUpdater
type BookingUpdater interface {
	UpdateBooking(ctx context.Context, id int64, patch storage.BookingPatch) (*models.Booking, error)
}

func New(log *slog.Logger, updater BookingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBooking.New"

		log = log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int64("booking_id", id))

		var req Request

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		if req.EventDate != nil {
			yesterday := models.DateOf(time.Now().AddDate(0, 0, -1))
			if req.EventDate.Before(yesterday.Time) {
				log.Error("event date is in the past", slog.String("event_date", req.EventDate.Format("2006-01-02")))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("event_date must not be before yesterday"))

				return
			}
		}

		booking, err := updater.UpdateBooking(r.Context(), id, storage.BookingPatch{
			ContractorName: req.ContractorName,
			EventDate:      req.EventDate,
			CacheAmount:    req.CacheAmount,
			EventAddress:   req.EventAddress,
		})
		if err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				log.Error("booking not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			log.Error("failed to update booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update booking"))
			return
		}

		log.Info("booking updated")

		render.JSON(w, r, booking)
	}
}
