package usecase

import (
	"context"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/database"
)

// In-memory repositories for service tests. They enforce the same unique
// keys the Postgres schema does, returning database.ErrDuplicateKey so the
// services' conflict translation is exercised for real.

type fakeMovieRepo struct {
	movies map[int64]*entity.Movie
	nextID int64
	err    error // forced failure for every call when set
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: make(map[int64]*entity.Movie)}
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	if f.err != nil {
		return f.err
	}
	for _, m := range f.movies {
		if m.Title == movie.Title {
			return fmt.Errorf("insert movie: %w", database.ErrDuplicateKey)
		}
	}
	f.nextID++
	movie.ID = f.nextID
	stored := *movie
	f.movies[movie.ID] = &stored
	return nil
}

func (f *fakeMovieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Movie
	for id := int64(1); id <= f.nextID; id++ {
		if m, ok := f.movies[id]; ok {
			copied := *m
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	m, ok := f.movies[id]
	if !ok {
		return nil, nil
	}
	copied := *m
	return &copied, nil
}

func (f *fakeMovieRepo) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, m := range f.movies {
		if m.Title == title {
			copied := *m
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	if f.err != nil {
		return f.err
	}
	for id, m := range f.movies {
		if id != movie.ID && m.Title == movie.Title {
			return fmt.Errorf("update movie: %w", database.ErrDuplicateKey)
		}
	}
	stored := *movie
	f.movies[movie.ID] = &stored
	return nil
}

func (f *fakeMovieRepo) DeleteByTitle(ctx context.Context, title string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	for id, m := range f.movies {
		if m.Title == title {
			delete(f.movies, id)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeShowtimeRepo struct {
	showtimes map[int64]*entity.Showtime
	nextID    int64
	err       error
}

func newFakeShowtimeRepo() *fakeShowtimeRepo {
	return &fakeShowtimeRepo{showtimes: make(map[int64]*entity.Showtime)}
}

func (f *fakeShowtimeRepo) Create(ctx context.Context, showtime *entity.Showtime) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	showtime.ID = f.nextID
	stored := *showtime
	f.showtimes[showtime.ID] = &stored
	return nil
}

func (f *fakeShowtimeRepo) FindByID(ctx context.Context, id int64) (*entity.Showtime, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.showtimes[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (f *fakeShowtimeRepo) FindByTheater(ctx context.Context, theater string) ([]*entity.Showtime, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Showtime
	for id := int64(1); id <= f.nextID; id++ {
		if s, ok := f.showtimes[id]; ok && s.Theater == theater {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeShowtimeRepo) Update(ctx context.Context, showtime *entity.Showtime) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.showtimes[showtime.ID]; !ok {
		return fmt.Errorf("update showtime: no rows affected")
	}
	stored := *showtime
	f.showtimes[showtime.ID] = &stored
	return nil
}

func (f *fakeShowtimeRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.showtimes[id]; !ok {
		return 0, nil
	}
	delete(f.showtimes, id)
	return 1, nil
}

type fakeBookingRepo struct {
	bookings map[int64]*entity.Booking
	nextID   int64
	err      error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[int64]*entity.Booking)}
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	if f.err != nil {
		return f.err
	}
	for _, b := range f.bookings {
		if b.ShowtimeID == booking.ShowtimeID && b.SeatNumber == booking.SeatNumber {
			return fmt.Errorf("insert booking: %w", database.ErrDuplicateKey)
		}
	}
	f.nextID++
	booking.ID = f.nextID
	stored := *booking
	f.bookings[booking.ID] = &stored
	return nil
}

type fakeRepos struct {
	movie    *fakeMovieRepo
	showtime *fakeShowtimeRepo
	booking  *fakeBookingRepo
	repo     *repository.Repository
}

func newFakeRepos() *fakeRepos {
	f := &fakeRepos{
		movie:    newFakeMovieRepo(),
		showtime: newFakeShowtimeRepo(),
		booking:  newFakeBookingRepo(),
	}
	f.repo = &repository.Repository{
		Movie:    f.movie,
		Showtime: f.showtime,
		Booking:  f.booking,
	}
	return f
}
