package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/Alexandra1624/infra-sp2/internal/data/repository"
	"github.com/Alexandra1624/infra-sp2/internal/dto/request"
	"github.com/Alexandra1624/infra-sp2/internal/usecase"
	"github.com/Alexandra1624/infra-sp2/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TitleHandler struct {
	service usecase.TitleService
	log     *zap.Logger
}

func NewTitleHandler(service usecase.TitleService, log *zap.Logger) *TitleHandler {
	return &TitleHandler{
		service: service,
		log:     log,
	}
}

// GetAll handles GET /api/v1/titles
func (h *TitleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)

	query := r.URL.Query()
	filter := repository.TitleFilter{
		CategorySlug: query.Get("category"),
		GenreSlug:    query.Get("genre"),
		Name:         query.Get("name"),
		Year:         utils.ParseInt(query.Get("year"), 0),
	}

	titles, err := h.service.GetAll(r.Context(), filter, req)
	if err != nil {
		handleServiceError(h.log, w, err, "get titles")
		return
	}

	utils.ResponseSuccess(w, "Titles retrieved successfully", titles)
}

// Get handles GET /api/v1/titles/{titleID}
func (h *TitleHandler) Get(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	if titleID == "" {
		utils.ResponseBadRequest(w, "Title ID is required", nil)
		return
	}

	title, err := h.service.GetByID(r.Context(), titleID)
	if err != nil {
		handleServiceError(h.log, w, err, "get title")
		return
	}

	utils.ResponseSuccess(w, "Title retrieved successfully", title)
}

// Create handles POST /api/v1/titles (admin only)
func (h *TitleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	title, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create title")
		return
	}

	utils.ResponseCreated(w, "Title created successfully", title)
}

// Update handles PATCH /api/v1/titles/{titleID} (admin only)
func (h *TitleHandler) Update(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	if titleID == "" {
		utils.ResponseBadRequest(w, "Title ID is required", nil)
		return
	}

	var req request.UpdateTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	title, err := h.service.Update(r.Context(), titleID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update title")
		return
	}

	utils.ResponseSuccess(w, "Title updated successfully", title)
}

// Delete handles DELETE /api/v1/titles/{titleID} (admin only)
func (h *TitleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	if titleID == "" {
		utils.ResponseBadRequest(w, "Title ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), titleID); err != nil {
		handleServiceError(h.log, w, err, "delete title")
		return
	}

	utils.ResponseNoContent(w)
}
