package wire

import (
	"movie-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShowtime(r chi.Router, showtimeHandler *adaptor.ShowtimeHandler) {
	r.Post("/showtimes", showtimeHandler.CreateShowtime)
	r.Post("/showtimes/update/{id}", showtimeHandler.UpdateShowtime)
	r.Get("/showtimes/{id}", showtimeHandler.GetShowtimeByID)
	r.Delete("/showtimes/{id}", showtimeHandler.DeleteShowtime)
}
