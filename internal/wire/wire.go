package wire

import (
	"net/http"

	"movie-booking/internal/adaptor"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled dependencies.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services and handlers and mounts the routes.
func Wiring(repo *repository.Repository, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireMovie(r, handler.Movie)
	wireShowtime(r, handler.Showtime)
	wireBooking(r, handler.Booking)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
