package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/domain"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type ShowtimeService interface {
	CreateShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error)
	UpdateShowtime(ctx context.Context, id int64, req *request.ShowtimeRequest) error
	GetShowtimeByID(ctx context.Context, id int64) (*response.ShowtimeDetailResponse, error)
	DeleteShowtime(ctx context.Context, id int64) error
}

type showtimeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewShowtimeService(repo *repository.Repository, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		repo: repo,
		log:  log.With(zap.String("service", "showtime")),
	}
}

func (s *showtimeService) CreateShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
	validated, err := s.validateShowtime(ctx, req, 0)
	if err != nil {
		return nil, err
	}

	showtime := &entity.Showtime{
		MovieID:   req.MovieID,
		Theater:   req.Theater,
		StartTime: validated.start,
		EndTime:   validated.end,
		Price:     validated.price,
	}

	if err := s.repo.Showtime.Create(ctx, showtime); err != nil {
		s.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.Int64("movie_id", req.MovieID),
			zap.String("theater", req.Theater),
		)
		return nil, fmt.Errorf("create showtime: %w", err)
	}

	s.log.Info("Showtime created",
		zap.Int64("showtime_id", showtime.ID),
		zap.Int64("movie_id", showtime.MovieID),
		zap.String("theater", showtime.Theater),
	)

	showtimeResp := response.ShowtimeToResponse(showtime)
	return &showtimeResp, nil
}

func (s *showtimeService) UpdateShowtime(ctx context.Context, id int64, req *request.ShowtimeRequest) error {
	existing, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find showtime: %w", err)
	}
	if existing == nil {
		return domain.NotFoundf("Showtime with ID %d not found", id)
	}

	validated, err := s.validateShowtime(ctx, req, id)
	if err != nil {
		return err
	}

	existing.MovieID = req.MovieID
	existing.Theater = req.Theater
	existing.StartTime = validated.start
	existing.EndTime = validated.end
	existing.Price = validated.price

	if err := s.repo.Showtime.Update(ctx, existing); err != nil {
		s.log.Error("Failed to update showtime",
			zap.Error(err),
			zap.Int64("showtime_id", id),
		)
		return fmt.Errorf("update showtime: %w", err)
	}

	s.log.Info("Showtime updated", zap.Int64("showtime_id", id))
	return nil
}

type validatedShowtime struct {
	start time.Time
	end   time.Time
	price float64
}

// validateShowtime runs the write checks in their fixed order: movie
// existence, temporal sanity, duration against the movie, per-theater
// overlap, then price. The order is deliberate so clients always get the
// most fundamental failure first. skipID excludes the record being updated
// from the overlap scan; it is 0 on create.
//
// The overlap check is read-then-write: two concurrent creates can both
// pass it before either insert commits. Accepted; there is no unique index
// that can express an interval condition.
func (s *showtimeService) validateShowtime(ctx context.Context, req *request.ShowtimeRequest, skipID int64) (*validatedShowtime, error) {
	movie, err := s.repo.Movie.FindByID(ctx, req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, domain.NotFoundf("Movie with ID %d not found", req.MovieID)
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, domain.BadRequestf("startTime must be a valid ISO-8601 timestamp")
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, domain.BadRequestf("endTime must be a valid ISO-8601 timestamp")
	}

	if !end.After(start) {
		return nil, domain.BadRequestf("endTime must be after startTime")
	}

	// Raw fractional minutes; the message reports them unrounded.
	durationMinutes := end.Sub(start).Minutes()
	if durationMinutes < float64(movie.Duration) {
		return nil, domain.BadRequestf("Showtime duration (%s min) is less than movie duration (%d min)",
			utils.FormatMinutes(durationMinutes), movie.Duration)
	}

	showtimes, err := s.repo.Showtime.FindByTheater(ctx, req.Theater)
	if err != nil {
		return nil, fmt.Errorf("find showtimes in theater: %w", err)
	}

	for _, existing := range showtimes {
		if existing.ID == skipID {
			continue
		}
		// [s1,e1) and [s2,e2) overlap iff NOT(e1<=s2 OR s1>=e2).
		if existing.EndTime.After(start) && existing.StartTime.Before(end) {
			return nil, domain.Conflictf("Another showtime already exists in %q that overlaps with %s - %s",
				req.Theater, req.StartTime, req.EndTime)
		}
	}

	if req.Price <= 0 {
		return nil, domain.BadRequestf("Price must be greater than 0")
	}

	return &validatedShowtime{
		start: start,
		end:   end,
		price: utils.Round1(req.Price),
	}, nil
}

func (s *showtimeService) GetShowtimeByID(ctx context.Context, id int64) (*response.ShowtimeDetailResponse, error) {
	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil {
		return nil, domain.NotFoundf("Showtime with ID %d not found", id)
	}

	showtimeResp := response.ShowtimeToDetailResponse(showtime)
	return &showtimeResp, nil
}

func (s *showtimeService) DeleteShowtime(ctx context.Context, id int64) error {
	affected, err := s.repo.Showtime.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete showtime",
			zap.Error(err),
			zap.Int64("showtime_id", id),
		)
		return fmt.Errorf("delete showtime: %w", err)
	}
	if affected == 0 {
		return domain.NotFoundf("Showtime with ID %d not found", id)
	}

	s.log.Info("Showtime deleted", zap.Int64("showtime_id", id))
	return nil
}
