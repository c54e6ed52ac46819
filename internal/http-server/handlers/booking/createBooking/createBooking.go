package createBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"artistBooker/internal/lib/api/response"
	"artistBooker/internal/lib/logger/sl"
	"artistBooker/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	ContractorName string        `json:"contractor_name" validate:"required,min=3,max=255"`
	ArtistID       string        `json:"artist_id" validate:"required"`
	ArtistName     string        `json:"artist_name" validate:"required"`
	ArtistImageURL *string       `json:"artist_image_url" validate:"omitempty,url"`
	EventDate      models.Date   `json:"event_date" validate:"required"`
	CacheAmount    *models.Money `json:"cache_amount" validate:"omitempty,gte=0"`
	EventAddress   *string       `json:"event_address" validate:"omitempty,max=500"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingSaver
type BookingSaver interface {
	SaveBooking(ctx context.Context, input models.NewBooking) (*models.Booking, error)
}

func New(log *slog.Logger, saver BookingSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
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

		yesterday := models.DateOf(time.Now().AddDate(0, 0, -1))
		if req.EventDate.Before(yesterday.Time) {
			log.Error("event date is in the past", slog.String("event_date", req.EventDate.Format("2006-01-02")))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event_date must not be before yesterday"))

			return
		}

		booking, err := saver.SaveBooking(r.Context(), models.NewBooking{
			ContractorName: req.ContractorName,
			ArtistID:       req.ArtistID,
			ArtistName:     req.ArtistName,
			ArtistImageURL: req.ArtistImageURL,
			EventDate:      req.EventDate,
			CacheAmount:    req.CacheAmount,
			EventAddress:   req.EventAddress,
		})
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create booking"))

			return
		}

		log.Info("booking created", slog.Int64("id", booking.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, booking)
	}
}
