package entity

import "time"

// Showtime is a scheduled screening of a movie in a theater. The
// [StartTime, EndTime) interval must not overlap another showtime in the
// same theater; that rule lives in the scheduler, not the table.
type Showtime struct {
	ID        int64     `db:"id"`
	MovieID   int64     `db:"movie_id"`
	Theater   string    `db:"theater"`
	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`
	Price     float64   `db:"price"` // one decimal
}
