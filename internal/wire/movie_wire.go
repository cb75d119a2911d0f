package wire

import (
	"movie-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Post("/movies", movieHandler.CreateMovie)
	r.Get("/movies", movieHandler.GetMovies)
	r.Post("/movies/update/{movieTitle}", movieHandler.UpdateMovie)
	r.Delete("/movies/{movieTitle}", movieHandler.DeleteMovie)
}
