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
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type MovieService interface {
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	GetMovies(ctx context.Context) ([]response.MovieResponse, error)
	UpdateMovie(ctx context.Context, title string, req *request.MovieRequest) error
	DeleteMovie(ctx context.Context, title string) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

// Title uniqueness is not checked up front: the insert races against
// concurrent creates, and the movies_title_key constraint decides the winner.
func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	movie := &entity.Movie{
		Title:       req.Title,
		Genre:       req.Genre,
		Duration:    req.Duration,
		Rating:      utils.Round1(req.Rating),
		ReleaseYear: req.ReleaseYear,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		if database.IsDuplicateKey(err) {
			return nil, domain.Conflictf("A movie with title %q already exists.", req.Title)
		}
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie)
	}

	return movieResponses, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, title string, req *request.MovieRequest) error {
	movie, err := s.repo.Movie.FindByTitle(ctx, title)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return domain.NotFoundf("Movie with title %q not found.", title)
	}

	// Full overwrite of every field, keeping the row id.
	movie.Title = req.Title
	movie.Genre = req.Genre
	movie.Duration = req.Duration
	movie.Rating = utils.Round1(req.Rating)
	movie.ReleaseYear = req.ReleaseYear

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		if database.IsDuplicateKey(err) {
			return domain.Conflictf("A movie with title %q already exists.", req.Title)
		}
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("title", title),
		)
		return fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	return nil
}

func (s *movieService) DeleteMovie(ctx context.Context, title string) error {
	affected, err := s.repo.Movie.DeleteByTitle(ctx, title)
	if err != nil {
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("title", title),
		)
		return fmt.Errorf("delete movie: %w", err)
	}
	if affected == 0 {
		return domain.NotFoundf("Movie with title %q not found.", title)
	}

	s.log.Info("Movie deleted", zap.String("title", title))
	return nil
}
