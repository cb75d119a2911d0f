package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// CreateMovie handles POST /movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseOK(w, movie)
}

// GetMovies handles GET /movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetMovies(r.Context())
	if err != nil {
		respondError(w, h.log, err, "get movies")
		return
	}

	utils.ResponseOK(w, movies)
}

// UpdateMovie handles POST /movies/update/{movieTitle}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "movieTitle")

	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateMovie(r.Context(), title, &req); err != nil {
		respondError(w, h.log, err, "update movie")
		return
	}

	utils.ResponseEmpty(w)
}

// DeleteMovie handles DELETE /movies/{movieTitle}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "movieTitle")

	if err := h.service.DeleteMovie(r.Context(), title); err != nil {
		respondError(w, h.log, err, "delete movie")
		return
	}

	utils.ResponseEmpty(w)
}
