package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

type ShowtimeResponse struct {
	ID        int64     `json:"id"`
	MovieID   int64     `json:"movieId"`
	Theater   string    `json:"theater"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Price     float64   `json:"price"`
}

// ShowtimeDetailResponse is the get-by-id shape: same fields minus the id.
type ShowtimeDetailResponse struct {
	MovieID   int64     `json:"movieId"`
	Theater   string    `json:"theater"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Price     float64   `json:"price"`
}

func ShowtimeToResponse(showtime *entity.Showtime) ShowtimeResponse {
	return ShowtimeResponse{
		ID:        showtime.ID,
		MovieID:   showtime.MovieID,
		Theater:   showtime.Theater,
		StartTime: showtime.StartTime,
		EndTime:   showtime.EndTime,
		Price:     showtime.Price,
	}
}

func ShowtimeToDetailResponse(showtime *entity.Showtime) ShowtimeDetailResponse {
	return ShowtimeDetailResponse{
		MovieID:   showtime.MovieID,
		Theater:   showtime.Theater,
		StartTime: showtime.StartTime,
		EndTime:   showtime.EndTime,
		Price:     showtime.Price,
	}
}
