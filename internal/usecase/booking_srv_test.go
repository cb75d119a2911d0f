package usecase

import (
	"context"
	"errors"
	"testing"

	"movie-booking/internal/domain"
	"movie-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedShowtime(t *testing.T, repos *fakeRepos) int64 {
	t.Helper()
	movieID := seedMovie(t, repos, "Inception", 148)
	svc := NewShowtimeService(repos.repo, zap.NewNop())
	showtime, err := svc.CreateShowtime(context.Background(), showtimeInput(movieID))
	require.NoError(t, err)
	return showtime.ID
}

func bookingInput(showtimeID int64) *request.BookingRequest {
	return &request.BookingRequest{
		ShowtimeID: showtimeID,
		SeatNumber: 15,
		UserID:     "84438967-f68f-4fa0-b620-0f08217e76af",
	}
}

func TestBookingService_BookTicket_ReturnsToken(t *testing.T) {
	repos := newFakeRepos()
	showtimeID := seedShowtime(t, repos)
	svc := NewBookingService(repos.repo, zap.NewNop())

	booking, err := svc.BookTicket(context.Background(), bookingInput(showtimeID))

	require.NoError(t, err)
	_, parseErr := uuid.Parse(booking.BookingID)
	assert.NoError(t, parseErr, "booking token must be a UUID")
}

func TestBookingService_BookTicket_ShowtimeNotFound(t *testing.T) {
	repos := newFakeRepos()
	svc := NewBookingService(repos.repo, zap.NewNop())

	_, err := svc.BookTicket(context.Background(), bookingInput(123))

	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.Equal(t, "Showtime with ID 123 not found", err.Error())
}

func TestBookingService_BookTicket_SeatTaken(t *testing.T) {
	repos := newFakeRepos()
	showtimeID := seedShowtime(t, repos)
	svc := NewBookingService(repos.repo, zap.NewNop())

	_, err := svc.BookTicket(context.Background(), bookingInput(showtimeID))
	require.NoError(t, err)

	_, err = svc.BookTicket(context.Background(), bookingInput(showtimeID))

	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	assert.Equal(t, "Seat 15 is already booked for showtime 1", err.Error())
	assert.Len(t, repos.booking.bookings, 1, "exactly one booking row survives")
}

func TestBookingService_BookTicket_DifferentSeatAllowed(t *testing.T) {
	repos := newFakeRepos()
	showtimeID := seedShowtime(t, repos)
	svc := NewBookingService(repos.repo, zap.NewNop())

	_, err := svc.BookTicket(context.Background(), bookingInput(showtimeID))
	require.NoError(t, err)

	other := bookingInput(showtimeID)
	other.SeatNumber = 16

	_, err = svc.BookTicket(context.Background(), other)
	require.NoError(t, err)
}

func TestBookingService_BookTicket_UnexpectedFailureIsOpaque(t *testing.T) {
	repos := newFakeRepos()
	showtimeID := seedShowtime(t, repos)
	repos.booking.err = errors.New("connection reset by peer")
	svc := NewBookingService(repos.repo, zap.NewNop())

	_, err := svc.BookTicket(context.Background(), bookingInput(showtimeID))

	require.Error(t, err)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
	assert.Equal(t, "Booking failed unexpectedly", err.Error())
}
