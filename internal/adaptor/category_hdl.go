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

type CategoryHandler struct {
	service usecase.CategoryService
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log,
	}
}

// GetAll handles GET /api/v1/categories
func (h *CategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)
	search := r.URL.Query().Get("search")

	categories, err := h.service.GetAll(r.Context(), search, req)
	if err != nil {
		handleServiceError(h.log, w, err, "get categories")
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved successfully", categories)
}

// Create handles POST /api/v1/categories (admin only)
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	category, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create category")
		return
	}

	utils.ResponseCreated(w, "Category created successfully", category)
}

// Delete handles DELETE /api/v1/categories/{slug} (admin only)
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Slug is required", nil)
		return
	}

	if err := h.service.DeleteBySlug(r.Context(), slug); err != nil {
		handleServiceError(h.log, w, err, "delete category")
		return
	}

	utils.ResponseNoContent(w)
}
