package entity

// Movie is a registered film. Title is unique, enforced by the movies table.
type Movie struct {
	ID          int64   `db:"id"`
	Title       string  `db:"title"`
	Genre       string  `db:"genre"`
	Duration    int     `db:"duration"` // minutes
	Rating      float64 `db:"rating"`   // 0.0-10.0, one decimal
	ReleaseYear int     `db:"release_year"`
}
