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

type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log,
	}
}

// GetByReview handles GET /api/v1/titles/{titleID}/reviews/{reviewID}/comments
func (h *CommentHandler) GetByReview(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")
	req := paginationFromQuery(r)

	comments, err := h.service.GetByReview(r.Context(), titleID, reviewID, req)
	if err != nil {
		handleServiceError(h.log, w, err, "get comments")
		return
	}

	utils.ResponseSuccess(w, "Comments retrieved successfully", comments)
}

// Get handles GET /api/v1/titles/{titleID}/reviews/{reviewID}/comments/{commentID}
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")
	commentID := chi.URLParam(r, "commentID")

	comment, err := h.service.Get(r.Context(), titleID, reviewID, commentID)
	if err != nil {
		handleServiceError(h.log, w, err, "get comment")
		return
	}

	utils.ResponseSuccess(w, "Comment retrieved successfully", comment)
}

// Create handles POST /api/v1/titles/{titleID}/reviews/{reviewID}/comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")

	var req request.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	comment, err := h.service.Create(r.Context(), principalFromContext(r), titleID, reviewID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create comment")
		return
	}

	utils.ResponseCreated(w, "Comment created successfully", comment)
}

// Update handles PATCH /api/v1/titles/{titleID}/reviews/{reviewID}/comments/{commentID}
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")
	commentID := chi.URLParam(r, "commentID")

	var req request.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	comment, err := h.service.Update(r.Context(), principalFromContext(r), titleID, reviewID, commentID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update comment")
		return
	}

	utils.ResponseSuccess(w, "Comment updated successfully", comment)
}

// Delete handles DELETE /api/v1/titles/{titleID}/reviews/{reviewID}/comments/{commentID}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")
	commentID := chi.URLParam(r, "commentID")

	if err := h.service.Delete(r.Context(), principalFromContext(r), titleID, reviewID, commentID); err != nil {
		handleServiceError(h.log, w, err, "delete comment")
		return
	}

	utils.ResponseNoContent(w)
}
