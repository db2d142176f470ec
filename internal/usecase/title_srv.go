package usecase

import (
	"context"
	"time"

	"github.com/Alexandra1624/infra-sp2/internal/data/entity"
	"github.com/Alexandra1624/infra-sp2/internal/data/repository"
	"github.com/Alexandra1624/infra-sp2/internal/dto/request"
	"github.com/Alexandra1624/infra-sp2/internal/dto/response"
	"github.com/Alexandra1624/infra-sp2/pkg/apperr"
	"github.com/Alexandra1624/infra-sp2/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TitleService interface {
	Create(ctx context.Context, req *request.CreateTitleRequest) (*response.TitleResponse, error)
	GetAll(ctx context.Context, filter repository.TitleFilter, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error)
	GetByID(ctx context.Context, titleID string) (*response.TitleResponse, error)
	Update(ctx context.Context, titleID string, req *request.UpdateTitleRequest) (*response.TitleResponse, error)
	Delete(ctx context.Context, titleID string) error
}

type titleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTitleService(repo *repository.Repository, log *zap.Logger) TitleService {
	return &titleService{
		repo: repo,
		log:  log.With(zap.String("service", "title")),
	}
}

func (s *titleService) Create(ctx context.Context, req *request.CreateTitleRequest) (*response.TitleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create title validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if req.Year > time.Now().Year() {
		return nil, apperr.Validation("year %d is in the future", req.Year)
	}

	category, err := s.findCategoryBySlug(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	genres, err := s.findGenresBySlugs(ctx, req.Genres)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	title := &entity.Title{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
		CategoryID:  &category.ID,
	}

	genreIDs := make([]uuid.UUID, len(genres))
	for i, genre := range genres {
		genreIDs[i] = genre.ID
	}

	if err := s.repo.Title.Create(ctx, title, genreIDs); err != nil {
		s.log.Error("Failed to create title", zap.Error(err), zap.String("name", req.Name))
		return nil, apperr.Internal("failed to create title", err)
	}

	s.log.Info("Title created",
		zap.String("title_id", title.ID.String()),
		zap.String("name", title.Name),
	)

	resp := response.TitleToResponse(title, category, genres)
	return &resp, nil
}

func (s *titleService) GetAll(ctx context.Context, filter repository.TitleFilter, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error) {
	titles, err := s.repo.Title.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get titles", zap.Error(err))
		return nil, apperr.Internal("failed to get titles", err)
	}

	total, err := s.repo.Title.CountAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count titles", zap.Error(err))
		return nil, apperr.Internal("failed to count titles", err)
	}

	titleResponses := make([]response.TitleResponse, len(titles))
	for i, title := range titles {
		resp, err := s.buildTitleResponse(ctx, title)
		if err != nil {
			return nil, err
		}
		titleResponses[i] = *resp
	}

	return response.NewPaginatedResponse(titleResponses, req.Page, req.PerPage, total), nil
}

func (s *titleService) GetByID(ctx context.Context, titleID string) (*response.TitleResponse, error) {
	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	return s.buildTitleResponse(ctx, title)
}

func (s *titleService) Update(ctx context.Context, titleID string, req *request.UpdateTitleRequest) (*response.TitleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update title validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		title.Name = *req.Name
	}
	if req.Year != nil {
		if *req.Year > time.Now().Year() {
			return nil, apperr.Validation("year %d is in the future", *req.Year)
		}
		title.Year = *req.Year
	}
	if req.Description != nil {
		title.Description = req.Description
	}
	if req.Category != nil {
		category, err := s.findCategoryBySlug(ctx, *req.Category)
		if err != nil {
			return nil, err
		}
		title.CategoryID = &category.ID
	}

	var genreIDs []uuid.UUID
	if req.Genres != nil {
		genres, err := s.findGenresBySlugs(ctx, req.Genres)
		if err != nil {
			return nil, err
		}
		genreIDs = make([]uuid.UUID, len(genres))
		for i, genre := range genres {
			genreIDs[i] = genre.ID
		}
	}

	title.UpdatedAt = time.Now()

	if err := s.repo.Title.Update(ctx, title, genreIDs); err != nil {
		s.log.Error("Failed to update title",
			zap.Error(err), zap.String("title_id", titleID))
		return nil, apperr.Internal("failed to update title", err)
	}

	return s.buildTitleResponse(ctx, title)
}

func (s *titleService) Delete(ctx context.Context, titleID string) error {
	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return err
	}

	if err := s.repo.Title.Delete(ctx, title.ID); err != nil {
		s.log.Error("Failed to delete title",
			zap.Error(err), zap.String("title_id", titleID))
		return apperr.Internal("failed to delete title", err)
	}

	s.log.Info("Title deleted", zap.String("title_id", titleID))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *titleService) findTitle(ctx context.Context, titleID string) (*entity.Title, error) {
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

func (s *titleService) findCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	category, err := s.repo.Category.FindBySlug(ctx, slug)
	if err != nil {
		s.log.Error("Failed to find category", zap.Error(err), zap.String("slug", slug))
		return nil, apperr.Internal("failed to find category", err)
	}
	if category == nil {
		return nil, apperr.NotFound("category %s not found", slug)
	}
	return category, nil
}

func (s *titleService) findGenresBySlugs(ctx context.Context, slugs []string) ([]*entity.Genre, error) {
	genres, err := s.repo.Genre.FindBySlugs(ctx, slugs)
	if err != nil {
		s.log.Error("Failed to find genres", zap.Error(err))
		return nil, apperr.Internal("failed to find genres", err)
	}
	if len(genres) != len(slugs) {
		return nil, apperr.NotFound("one or more genres not found")
	}
	return genres, nil
}

func (s *titleService) buildTitleResponse(ctx context.Context, title *entity.Title) (*response.TitleResponse, error) {
	var category *entity.Category
	if title.CategoryID != nil {
		var err error
		category, err = s.repo.Category.FindByID(ctx, *title.CategoryID)
		if err != nil {
			s.log.Error("Failed to find title category", zap.Error(err))
			return nil, apperr.Internal("failed to find title category", err)
		}
	}

	genres, err := s.repo.Genre.FindByTitleID(ctx, title.ID)
	if err != nil {
		s.log.Error("Failed to find title genres", zap.Error(err))
		return nil, apperr.Internal("failed to find title genres", err)
	}

	resp := response.TitleToResponse(title, category, genres)
	return &resp, nil
}
