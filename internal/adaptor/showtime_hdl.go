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

type ShowtimeHandler struct {
	service usecase.ShowtimeService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

// CreateShowtime handles POST /showtimes
func (h *ShowtimeHandler) CreateShowtime(w http.ResponseWriter, r *http.Request) {
	var req request.ShowtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	showtime, err := h.service.CreateShowtime(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create showtime")
		return
	}

	utils.ResponseOK(w, showtime)
}

// UpdateShowtime handles POST /showtimes/update/{id}
func (h *ShowtimeHandler) UpdateShowtime(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseInt(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Showtime ID must be an integer", nil)
		return
	}

	var req request.ShowtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateShowtime(r.Context(), id, &req); err != nil {
		respondError(w, h.log, err, "update showtime")
		return
	}

	utils.ResponseEmpty(w)
}

// GetShowtimeByID handles GET /showtimes/{id}
func (h *ShowtimeHandler) GetShowtimeByID(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseInt(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Showtime ID must be an integer", nil)
		return
	}

	showtime, err := h.service.GetShowtimeByID(r.Context(), id)
	if err != nil {
		respondError(w, h.log, err, "get showtime by ID")
		return
	}

	utils.ResponseOK(w, showtime)
}

// DeleteShowtime handles DELETE /showtimes/{id}
func (h *ShowtimeHandler) DeleteShowtime(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseInt(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Showtime ID must be an integer", nil)
		return
	}

	if err := h.service.DeleteShowtime(r.Context(), id); err != nil {
		respondError(w, h.log, err, "delete showtime")
		return
	}

	utils.ResponseEmpty(w)
}
