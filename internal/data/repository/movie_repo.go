package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	FindByTitle(ctx context.Context, title string) (*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	DeleteByTitle(ctx context.Context, title string) (int64, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (title, genre, duration, rating, release_year)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		movie.Title,
		movie.Genre,
		movie.Duration,
		movie.Rating,
		movie.ReleaseYear,
	).Scan(&movie.ID)

	if err != nil {
		if database.IsDuplicateKey(err) {
			return fmt.Errorf("insert movie: %w", database.ErrDuplicateKey)
		}
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("insert movie: %w", err)
	}

	return nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, genre, duration, rating, release_year
		FROM movies
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all movies", zap.Error(err))
		return nil, fmt.Errorf("find movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Genre,
			&movie.Duration,
			&movie.Rating,
			&movie.ReleaseYear,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}

	return movies, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

func (r *movieRepository) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	return r.findOne(ctx, `WHERE title = $1`, title)
}

func (r *movieRepository) findOne(ctx context.Context, where string, arg any) (*entity.Movie, error) {
	query := `
		SELECT id, title, genre, duration, rating, release_year
		FROM movies ` + where

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genre,
		&movie.Duration,
		&movie.Rating,
		&movie.ReleaseYear,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie", zap.Error(err))
		return nil, fmt.Errorf("find movie: %w", err)
	}

	return &movie, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, genre = $3, duration = $4, rating = $5, release_year = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Genre,
		movie.Duration,
		movie.Rating,
		movie.ReleaseYear,
	)

	if err != nil {
		if database.IsDuplicateKey(err) {
			return fmt.Errorf("update movie: %w", database.ErrDuplicateKey)
		}
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return fmt.Errorf("update movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update movie: no rows affected")
	}

	return nil
}

func (r *movieRepository) DeleteByTitle(ctx context.Context, title string) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM movies WHERE title = $1`, title)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("title", title),
		)
		return 0, fmt.Errorf("delete movie: %w", err)
	}

	return result.RowsAffected(), nil
}
