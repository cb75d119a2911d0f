package adaptor

import (
	"movie-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Movie    *MovieHandler
	Showtime *ShowtimeHandler
	Booking  *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:    NewMovieHandler(service.Movie, log),
		Showtime: NewShowtimeHandler(service.Showtime, log),
		Booking:  NewBookingHandler(service.Booking, log),
	}
}
