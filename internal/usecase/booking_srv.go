package usecase

import (
	"context"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/domain"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	BookTicket(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// BookTicket allocates one seat of one showtime. Seat availability is not
// pre-checked: the insert races against concurrent bookings of the same
// seat and the bookings_showtime_seat_key constraint picks exactly one
// winner. The loser gets the conflict. Never retried.
func (s *bookingService) BookTicket(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
	showtime, err := s.repo.Showtime.FindByID(ctx, req.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil {
		return nil, domain.NotFoundf("Showtime with ID %d not found", req.ShowtimeID)
	}

	booking := &entity.Booking{
		ShowtimeID: req.ShowtimeID,
		SeatNumber: req.SeatNumber,
		UserID:     req.UserID,
		BookingID:  uuid.New(),
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		if database.IsDuplicateKey(err) {
			return nil, domain.Conflictf("Seat %d is already booked for showtime %d",
				req.SeatNumber, req.ShowtimeID)
		}
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("showtime_id", req.ShowtimeID),
			zap.Int("seat_number", req.SeatNumber),
		)
		return nil, domain.Internalf("Booking failed unexpectedly")
	}

	s.log.Info("Ticket booked",
		zap.Int64("showtime_id", req.ShowtimeID),
		zap.Int("seat_number", req.SeatNumber),
		zap.String("booking_id", booking.BookingID.String()),
	)

	return &response.BookingResponse{BookingID: booking.BookingID.String()}, nil
}
