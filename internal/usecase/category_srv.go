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

type CategoryService interface {
	Create(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error)
	GetAll(ctx context.Context, search string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error)
	DeleteBySlug(ctx context.Context, slug string) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	log          *zap.Logger
}

func NewCategoryService(categoryRepo repository.CategoryRepository, log *zap.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		log:          log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) Create(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create category validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	category := &entity.Category{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: req.Name,
		Slug: req.Slug,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if apperr.IsKind(err, apperr.KindConflict) {
			return nil, err
		}
		s.log.Error("Failed to create category", zap.Error(err), zap.String("slug", req.Slug))
		return nil, apperr.Internal("failed to create category", err)
	}

	s.log.Info("Category created", zap.String("slug", category.Slug))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) GetAll(ctx context.Context, search string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error) {
	categories, err := s.categoryRepo.FindAll(ctx, search, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get categories", zap.Error(err))
		return nil, apperr.Internal("failed to get categories", err)
	}

	total, err := s.categoryRepo.CountAll(ctx, search)
	if err != nil {
		s.log.Error("Failed to count categories", zap.Error(err))
		return nil, apperr.Internal("failed to count categories", err)
	}

	categoryResponses := make([]response.CategoryResponse, len(categories))
	for i, category := range categories {
		categoryResponses[i] = response.CategoryToResponse(category)
	}

	return response.NewPaginatedResponse(categoryResponses, req.Page, req.PerPage, total), nil
}

func (s *categoryService) DeleteBySlug(ctx context.Context, slug string) error {
	if err := s.categoryRepo.DeleteBySlug(ctx, slug); err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return err
		}
		s.log.Error("Failed to delete category", zap.Error(err), zap.String("slug", slug))
		return apperr.Internal("failed to delete category", err)
	}

	s.log.Info("Category deleted", zap.String("slug", slug))
	return nil
}
