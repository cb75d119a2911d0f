package response

import "movie-booking/internal/data/entity"

type MovieResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	Duration    int     `json:"duration"`
	Rating      float64 `json:"rating"`
	ReleaseYear int     `json:"releaseYear"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Genre:       movie.Genre,
		Duration:    movie.Duration,
		Rating:      movie.Rating,
		ReleaseYear: movie.ReleaseYear,
	}
}
