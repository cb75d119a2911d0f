package repository

import (
	"context"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (showtime_id, seat_number, user_id, booking_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		booking.ShowtimeID,
		booking.SeatNumber,
		booking.UserID,
		booking.BookingID,
	).Scan(&booking.ID)

	if err != nil {
		if database.IsDuplicateKey(err) {
			return fmt.Errorf("insert booking: %w", database.ErrDuplicateKey)
		}
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("showtime_id", booking.ShowtimeID),
			zap.Int("seat_number", booking.SeatNumber),
		)
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}
