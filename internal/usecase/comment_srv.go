package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/Alexandra1624/infra-sp2/internal/access"
	"github.com/Alexandra1624/infra-sp2/internal/data/entity"
	"github.com/Alexandra1624/infra-sp2/internal/data/repository"
	"github.com/Alexandra1624/infra-sp2/internal/dto/request"
	"github.com/Alexandra1624/infra-sp2/internal/dto/response"
	"github.com/Alexandra1624/infra-sp2/pkg/apperr"
	"github.com/Alexandra1624/infra-sp2/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CommentService interface {
	Create(ctx context.Context, principal access.Principal, titleID, reviewID string, req *request.CreateCommentRequest) (*response.CommentResponse, error)
	GetByReview(ctx context.Context, titleID, reviewID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error)
	Get(ctx context.Context, titleID, reviewID, commentID string) (*response.CommentResponse, error)
	Update(ctx context.Context, principal access.Principal, titleID, reviewID, commentID string, req *request.UpdateCommentRequest) (*response.CommentResponse, error)
	Delete(ctx context.Context, principal access.Principal, titleID, reviewID, commentID string) error
}

type commentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommentService(repo *repository.Repository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) Create(ctx context.Context, principal access.Principal, titleID, reviewID string, req *request.CreateCommentRequest) (*response.CommentResponse, error) {
	if !access.CanContribute(principal, http.MethodPost) {
		return nil, apperr.Authentication("authentication required")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create comment validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	review, err := s.findReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		ReviewID: review.ID,
		AuthorID: principal.ID,
		Text:     req.Text,
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		s.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("review_id", reviewID),
			zap.String("author_id", principal.ID.String()),
		)
		return nil, apperr.Internal("failed to create comment", err)
	}

	s.log.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("review_id", reviewID),
		zap.String("author_id", principal.ID.String()),
	)

	resp := response.CommentToResponse(comment, principal.Username)
	return &resp, nil
}

func (s *commentService) GetByReview(ctx context.Context, titleID, reviewID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error) {
	review, err := s.findReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	comments, err := s.repo.Comment.FindByReviewID(ctx, review.ID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get review comments",
			zap.Error(err), zap.String("review_id", reviewID))
		return nil, apperr.Internal("failed to get comments", err)
	}

	total, err := s.repo.Comment.CountByReviewID(ctx, review.ID)
	if err != nil {
		s.log.Error("Failed to count review comments", zap.Error(err))
		return nil, apperr.Internal("failed to count comments", err)
	}

	commentResponses := make([]response.CommentResponse, len(comments))
	for i, comment := range comments {
		commentResponses[i] = response.CommentToResponse(comment, s.authorUsername(ctx, comment.AuthorID))
	}

	return response.NewPaginatedResponse(commentResponses, req.Page, req.PerPage, total), nil
}

func (s *commentService) Get(ctx context.Context, titleID, reviewID, commentID string) (*response.CommentResponse, error) {
	comment, err := s.findComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	resp := response.CommentToResponse(comment, s.authorUsername(ctx, comment.AuthorID))
	return &resp, nil
}

func (s *commentService) Update(ctx context.Context, principal access.Principal, titleID, reviewID, commentID string, req *request.UpdateCommentRequest) (*response.CommentResponse, error) {
	comment, err := s.findComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(principal, http.MethodPatch, comment.AuthorID); err != nil {
		return nil, err
	}

	if req.Text != nil {
		comment.Text = *req.Text
	}

	if err := s.repo.Comment.Update(ctx, comment); err != nil {
		s.log.Error("Failed to update comment",
			zap.Error(err), zap.String("comment_id", commentID))
		return nil, apperr.Internal("failed to update comment", err)
	}

	s.log.Info("Comment updated",
		zap.String("comment_id", commentID),
		zap.String("actor_id", principal.ID.String()),
	)

	resp := response.CommentToResponse(comment, s.authorUsername(ctx, comment.AuthorID))
	return &resp, nil
}

func (s *commentService) Delete(ctx context.Context, principal access.Principal, titleID, reviewID, commentID string) error {
	comment, err := s.findComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return err
	}

	if err := s.authorize(principal, http.MethodDelete, comment.AuthorID); err != nil {
		return err
	}

	if err := s.repo.Comment.Delete(ctx, comment.ID); err != nil {
		s.log.Error("Failed to delete comment",
			zap.Error(err), zap.String("comment_id", commentID))
		return apperr.Internal("failed to delete comment", err)
	}

	s.log.Info("Comment deleted",
		zap.String("comment_id", commentID),
		zap.String("actor_id", principal.ID.String()),
	)

	return nil
}

// ==================== HELPER METHODS ====================

func (s *commentService) authorize(principal access.Principal, method string, authorID uuid.UUID) error {
	if !principal.Authenticated {
		return apperr.Authentication("authentication required")
	}
	if !access.CanActOn(principal, method, authorID) {
		s.log.Warn("Comment access denied",
			zap.String("actor_id", principal.ID.String()),
			zap.String("author_id", authorID.String()),
			zap.String("method", method),
		)
		return apperr.Authorization("you may only modify your own comment")
	}
	return nil
}

func (s *commentService) findReview(ctx context.Context, titleID, reviewID string) (*entity.Review, error) {
	titleUUID, err := uuid.Parse(titleID)
	if err != nil {
		return nil, apperr.Validation("invalid title ID format %s", titleID)
	}

	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, apperr.Validation("invalid review ID format %s", reviewID)
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil {
		s.log.Error("Failed to find review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, apperr.Internal("failed to find review", err)
	}
	if review == nil || review.TitleID != titleUUID {
		return nil, apperr.NotFound("review %s not found", reviewID)
	}

	return review, nil
}

func (s *commentService) findComment(ctx context.Context, titleID, reviewID, commentID string) (*entity.Comment, error) {
	review, err := s.findReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(commentID)
	if err != nil {
		return nil, apperr.Validation("invalid comment ID format %s", commentID)
	}

	comment, err := s.repo.Comment.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find comment", zap.Error(err), zap.String("comment_id", commentID))
		return nil, apperr.Internal("failed to find comment", err)
	}
	if comment == nil || comment.ReviewID != review.ID {
		return nil, apperr.NotFound("comment %s not found", commentID)
	}

	return comment, nil
}

func (s *commentService) authorUsername(ctx context.Context, authorID uuid.UUID) string {
	user, err := s.repo.User.FindByID(ctx, authorID)
	if err != nil || user == nil {
		return ""
	}
	return user.Username
}
