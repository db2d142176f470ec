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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log,
	}
}

// GetByTitle handles GET /api/v1/titles/{titleID}/reviews
func (h *ReviewHandler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	req := paginationFromQuery(r)

	reviews, err := h.service.GetByTitle(r.Context(), titleID, req)
	if err != nil {
		handleServiceError(h.log, w, err, "get reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", reviews)
}

// Get handles GET /api/v1/titles/{titleID}/reviews/{reviewID}
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")

	review, err := h.service.Get(r.Context(), titleID, reviewID)
	if err != nil {
		handleServiceError(h.log, w, err, "get review")
		return
	}

	utils.ResponseSuccess(w, "Review retrieved successfully", review)
}

// Create handles POST /api/v1/titles/{titleID}/reviews
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.Create(r.Context(), principalFromContext(r), titleID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create review")
		return
	}

	utils.ResponseCreated(w, "Review created successfully", review)
}

// Update handles PATCH /api/v1/titles/{titleID}/reviews/{reviewID}
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")

	var req request.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.Update(r.Context(), principalFromContext(r), titleID, reviewID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update review")
		return
	}

	utils.ResponseSuccess(w, "Review updated successfully", review)
}

// Delete handles DELETE /api/v1/titles/{titleID}/reviews/{reviewID}
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")

	if err := h.service.Delete(r.Context(), principalFromContext(r), titleID, reviewID); err != nil {
		handleServiceError(h.log, w, err, "delete review")
		return
	}

	utils.ResponseNoContent(w)
}
