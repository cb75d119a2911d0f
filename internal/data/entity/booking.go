package entity

import "github.com/google/uuid"

// Booking allocates one seat of one showtime. The (showtime_id, seat_number)
// pair is unique in the bookings table, which is what arbitrates concurrent
// bookings of the same seat. BookingID is the token handed to the client,
// distinct from the row id.
type Booking struct {
	ID         int64     `db:"id"`
	ShowtimeID int64     `db:"showtime_id"`
	SeatNumber int       `db:"seat_number"`
	UserID     string    `db:"user_id"`
	BookingID  uuid.UUID `db:"booking_id"`
}
