package database

import (
	"context"
	"fmt"
)

// Table definitions live here, not on the entities. Unique indexes carry the
// invariants the services rely on: one movie per title, one booking per
// (showtime, seat), one row per booking token.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS movies (
		id           BIGSERIAL PRIMARY KEY,
		title        TEXT NOT NULL,
		genre        TEXT NOT NULL,
		duration     INTEGER NOT NULL,
		rating       DOUBLE PRECISION NOT NULL,
		release_year INTEGER NOT NULL,
		CONSTRAINT movies_title_key UNIQUE (title)
	)`,
	`CREATE TABLE IF NOT EXISTS showtimes (
		id         BIGSERIAL PRIMARY KEY,
		movie_id   BIGINT NOT NULL REFERENCES movies (id),
		theater    TEXT NOT NULL,
		start_time TIMESTAMPTZ NOT NULL,
		end_time   TIMESTAMPTZ NOT NULL,
		price      DOUBLE PRECISION NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS showtimes_theater_idx ON showtimes (theater)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id          BIGSERIAL PRIMARY KEY,
		showtime_id BIGINT NOT NULL REFERENCES showtimes (id),
		seat_number INTEGER NOT NULL,
		user_id     TEXT NOT NULL,
		booking_id  UUID NOT NULL,
		CONSTRAINT bookings_showtime_seat_key UNIQUE (showtime_id, seat_number),
		CONSTRAINT bookings_booking_id_key UNIQUE (booking_id)
	)`,
}

// Migrate creates the tables and indexes if they do not exist yet.
func Migrate(ctx context.Context, db PgxIface) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
