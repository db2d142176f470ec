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

type GenreService interface {
	Create(ctx context.Context, req *request.CreateGenreRequest) (*response.GenreResponse, error)
	GetAll(ctx context.Context, search string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error)
	DeleteBySlug(ctx context.Context, slug string) error
}

type genreService struct {
	genreRepo repository.GenreRepository
	log       *zap.Logger
}

func NewGenreService(genreRepo repository.GenreRepository, log *zap.Logger) GenreService {
	return &genreService{
		genreRepo: genreRepo,
		log:       log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) Create(ctx context.Context, req *request.CreateGenreRequest) (*response.GenreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create genre validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	genre := &entity.Genre{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: req.Name,
		Slug: req.Slug,
	}

	if err := s.genreRepo.Create(ctx, genre); err != nil {
		if apperr.IsKind(err, apperr.KindConflict) {
			return nil, err
		}
		s.log.Error("Failed to create genre", zap.Error(err), zap.String("slug", req.Slug))
		return nil, apperr.Internal("failed to create genre", err)
	}

	s.log.Info("Genre created", zap.String("slug", genre.Slug))

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) GetAll(ctx context.Context, search string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error) {
	genres, err := s.genreRepo.FindAll(ctx, search, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get genres", zap.Error(err))
		return nil, apperr.Internal("failed to get genres", err)
	}

	total, err := s.genreRepo.CountAll(ctx, search)
	if err != nil {
		s.log.Error("Failed to count genres", zap.Error(err))
		return nil, apperr.Internal("failed to count genres", err)
	}

	genreResponses := make([]response.GenreResponse, len(genres))
	for i, genre := range genres {
		genreResponses[i] = response.GenreToResponse(genre)
	}

	return response.NewPaginatedResponse(genreResponses, req.Page, req.PerPage, total), nil
}

func (s *genreService) DeleteBySlug(ctx context.Context, slug string) error {
	if err := s.genreRepo.DeleteBySlug(ctx, slug); err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return err
		}
		s.log.Error("Failed to delete genre", zap.Error(err), zap.String("slug", slug))
		return apperr.Internal("failed to delete genre", err)
	}

	s.log.Info("Genre deleted", zap.String("slug", slug))
	return nil
}
