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

type ReviewService interface {
	Create(ctx context.Context, principal access.Principal, titleID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetByTitle(ctx context.Context, titleID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	Get(ctx context.Context, titleID, reviewID string) (*response.ReviewResponse, error)
	Update(ctx context.Context, principal access.Principal, titleID, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	Delete(ctx context.Context, principal access.Principal, titleID, reviewID string) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) Create(ctx context.Context, principal access.Principal, titleID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if !access.CanContribute(principal, http.MethodPost) {
		return nil, apperr.Authentication("authentication required")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	// Fast-path duplicate check; the unique constraint on (title_id, author_id)
	// still catches concurrent writers.
	existing, err := s.repo.Review.FindByTitleAndAuthor(ctx, title.ID, principal.ID)
	if err != nil {
		s.log.Error("Failed to check existing review", zap.Error(err))
		return nil, apperr.Internal("failed to check existing review", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("review for this title already exists")
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		TitleID:  title.ID,
		AuthorID: principal.ID,
		Text:     req.Text,
		Score:    req.Score,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		if apperr.IsKind(err, apperr.KindConflict) {
			return nil, err
		}
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("title_id", titleID),
			zap.String("author_id", principal.ID.String()),
		)
		return nil, apperr.Internal("failed to create review", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("title_id", titleID),
		zap.String("author_id", principal.ID.String()),
		zap.Int("score", req.Score),
	)

	resp := response.ReviewToResponse(review, principal.Username)
	return &resp, nil
}

func (s *reviewService) GetByTitle(ctx context.Context, titleID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByTitleID(ctx, title.ID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get title reviews",
			zap.Error(err), zap.String("title_id", titleID))
		return nil, apperr.Internal("failed to get reviews", err)
	}

	total, err := s.repo.Review.CountByTitleID(ctx, title.ID)
	if err != nil {
		s.log.Error("Failed to count title reviews", zap.Error(err))
		return nil, apperr.Internal("failed to count reviews", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = response.ReviewToResponse(review, s.authorUsername(ctx, review.AuthorID))
	}

	return response.NewPaginatedResponse(reviewResponses, req.Page, req.PerPage, total), nil
}

func (s *reviewService) Get(ctx context.Context, titleID, reviewID string) (*response.ReviewResponse, error) {
	review, err := s.findReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review, s.authorUsername(ctx, review.AuthorID))
	return &resp, nil
}

func (s *reviewService) Update(ctx context.Context, principal access.Principal, titleID, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	review, err := s.findReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(principal, http.MethodPatch, review.AuthorID); err != nil {
		return nil, err
	}

	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Score != nil {
		review.Score = *req.Score
	}

	if err := s.repo.Review.Update(ctx, review); err != nil {
		s.log.Error("Failed to update review",
			zap.Error(err), zap.String("review_id", reviewID))
		return nil, apperr.Internal("failed to update review", err)
	}

	s.log.Info("Review updated",
		zap.String("review_id", reviewID),
		zap.String("actor_id", principal.ID.String()),
	)

	resp := response.ReviewToResponse(review, s.authorUsername(ctx, review.AuthorID))
	return &resp, nil
}

func (s *reviewService) Delete(ctx context.Context, principal access.Principal, titleID, reviewID string) error {
	review, err := s.findReview(ctx, titleID, reviewID)
	if err != nil {
		return err
	}

	if err := s.authorize(principal, http.MethodDelete, review.AuthorID); err != nil {
		return err
	}

	if err := s.repo.Review.Delete(ctx, review.ID); err != nil {
		s.log.Error("Failed to delete review",
			zap.Error(err), zap.String("review_id", reviewID))
		return apperr.Internal("failed to delete review", err)
	}

	s.log.Info("Review deleted",
		zap.String("review_id", reviewID),
		zap.String("actor_id", principal.ID.String()),
	)

	return nil
}

// ==================== HELPER METHODS ====================

// authorize distinguishes 401 from 403: anonymous writers fail
// authentication, authenticated non-owners fail authorization.
func (s *reviewService) authorize(principal access.Principal, method string, authorID uuid.UUID) error {
	if !principal.Authenticated {
		return apperr.Authentication("authentication required")
	}
	if !access.CanActOn(principal, method, authorID) {
		s.log.Warn("Review access denied",
			zap.String("actor_id", principal.ID.String()),
			zap.String("author_id", authorID.String()),
			zap.String("method", method),
		)
		return apperr.Authorization("you may only modify your own review")
	}
	return nil
}

func (s *reviewService) findTitle(ctx context.Context, titleID string) (*entity.Title, error) {
	id, err := uuid.Parse(titleID)
	if err != nil {
		return nil, apperr.Validation("invalid title ID format %s", titleID)
	}

	title, err := s.repo.Title.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find title", zap.Error(err), zap.String("title_id", titleID))
		return nil, apperr.Internal("failed to find title", err)
	}
	if title == nil {
		return nil, apperr.NotFound("title %s not found", titleID)
	}

	return title, nil
}

func (s *reviewService) findReview(ctx context.Context, titleID, reviewID string) (*entity.Review, error) {
	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, apperr.Validation("invalid review ID format %s", reviewID)
	}

	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, apperr.Internal("failed to find review", err)
	}
	if review == nil || review.TitleID != title.ID {
		return nil, apperr.NotFound("review %s not found", reviewID)
	}

	return review, nil
}

func (s *reviewService) authorUsername(ctx context.Context, authorID uuid.UUID) string {
	user, err := s.repo.User.FindByID(ctx, authorID)
	if err != nil || user == nil {
		return ""
	}
	return user.Username
}
