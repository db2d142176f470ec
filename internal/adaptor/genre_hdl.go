package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/Alexandra1624/infra-sp2/internal/dto/request"
	"github.com/Alexandra1624/infra-sp2/internal/usecase"
	"github.com/Alexandra1624/infra-sp2/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type GenreHandler struct {
	service usecase.GenreService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log,
	}
}

// GetAll handles GET /api/v1/genres
func (h *GenreHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)
	search := r.URL.Query().Get("search")

	genres, err := h.service.GetAll(r.Context(), search, req)
	if err != nil {
		handleServiceError(h.log, w, err, "get genres")
		return
	}

	utils.ResponseSuccess(w, "Genres retrieved successfully", genres)
}

// Create handles POST /api/v1/genres (admin only)
func (h *GenreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGenreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	genre, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create genre")
		return
	}

	utils.ResponseCreated(w, "Genre created successfully", genre)
}

// Delete handles DELETE /api/v1/genres/{slug} (admin only)
func (h *GenreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Slug is required", nil)
		return
	}

	if err := h.service.DeleteBySlug(r.Context(), slug); err != nil {
		handleServiceError(h.log, w, err, "delete genre")
		return
	}

	utils.ResponseNoContent(w)
}
