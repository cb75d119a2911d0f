package usecase

import (
	"context"
	"testing"

	"movie-booking/internal/domain"
	"movie-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func movieInput() *request.MovieRequest {
	return &request.MovieRequest{
		Title:       "Inception",
		Genre:       "Sci-Fi",
		Duration:    148,
		Rating:      8.849,
		ReleaseYear: 2010,
	}
}

func TestMovieService_CreateMovie_RoundsRating(t *testing.T) {
	repos := newFakeRepos()
	svc := NewMovieService(repos.repo, zap.NewNop())

	movie, err := svc.CreateMovie(context.Background(), movieInput())

	require.NoError(t, err)
	assert.Equal(t, int64(1), movie.ID)
	assert.Equal(t, "Inception", movie.Title)
	assert.Equal(t, 8.8, movie.Rating)
}

func TestMovieService_CreateMovie_RoundsRatingUp(t *testing.T) {
	repos := newFakeRepos()
	svc := NewMovieService(repos.repo, zap.NewNop())

	input := movieInput()
	input.Rating = 9.96

	movie, err := svc.CreateMovie(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, 10.0, movie.Rating)
}

func TestMovieService_CreateMovie_DuplicateTitle(t *testing.T) {
	repos := newFakeRepos()
	svc := NewMovieService(repos.repo, zap.NewNop())

	_, err := svc.CreateMovie(context.Background(), movieInput())
	require.NoError(t, err)

	_, err = svc.CreateMovie(context.Background(), movieInput())

	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	assert.Equal(t, `A movie with title "Inception" already exists.`, err.Error())
}

func TestMovieService_GetMovies_IncludesCreated(t *testing.T) {
	repos := newFakeRepos()
	svc := NewMovieService(repos.repo, zap.NewNop())

	_, err := svc.CreateMovie(context.Background(), movieInput())
	require.NoError(t, err)

	movies, err := svc.GetMovies(context.Background())

	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Inception", movies[0].Title)
	assert.Equal(t, 8.8, movies[0].Rating)
}

func TestMovieService_UpdateMovie_NotFound(t *testing.T) {
	repos := newFakeRepos()
	svc := NewMovieService(repos.repo, zap.NewNop())

	err := svc.UpdateMovie(context.Background(), "Missing", movieInput())

	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.Equal(t, `Movie with title "Missing" not found.`, err.Error())
}

func TestMovieService_UpdateMovie_OverwritesAllFields(t *testing.T) {
	repos := newFakeRepos()
	svc := NewMovieService(repos.repo, zap.NewNop())

	_, err := svc.CreateMovie(context.Background(), movieInput())
	require.NoError(t, err)

	update := &request.MovieRequest{
		Title:       "Inception Director's Cut",
		Genre:       "Thriller",
		Duration:    160,
		Rating:      9.27,
		ReleaseYear: 2011,
	}
	err = svc.UpdateMovie(context.Background(), "Inception", update)
	require.NoError(t, err)

	movies, err := svc.GetMovies(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, int64(1), movies[0].ID)
	assert.Equal(t, "Inception Director's Cut", movies[0].Title)
	assert.Equal(t, "Thriller", movies[0].Genre)
	assert.Equal(t, 160, movies[0].Duration)
	assert.Equal(t, 9.3, movies[0].Rating)
	assert.Equal(t, 2011, movies[0].ReleaseYear)
}

func TestMovieService_UpdateMovie_TitleCollision(t *testing.T) {
	repos := newFakeRepos()
	svc := NewMovieService(repos.repo, zap.NewNop())

	_, err := svc.CreateMovie(context.Background(), movieInput())
	require.NoError(t, err)

	other := movieInput()
	other.Title = "Interstellar"
	_, err = svc.CreateMovie(context.Background(), other)
	require.NoError(t, err)

	rename := movieInput()
	rename.Title = "Interstellar"
	err = svc.UpdateMovie(context.Background(), "Inception", rename)

	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	assert.Equal(t, `A movie with title "Interstellar" already exists.`, err.Error())
}

func TestMovieService_DeleteMovie(t *testing.T) {
	repos := newFakeRepos()
	svc := NewMovieService(repos.repo, zap.NewNop())

	_, err := svc.CreateMovie(context.Background(), movieInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMovie(context.Background(), "Inception"))

	movies, err := svc.GetMovies(context.Background())
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestMovieService_DeleteMovie_NotFound(t *testing.T) {
	repos := newFakeRepos()
	svc := NewMovieService(repos.repo, zap.NewNop())

	err := svc.DeleteMovie(context.Background(), "Missing")

	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.Equal(t, `Movie with title "Missing" not found.`, err.Error())
}
