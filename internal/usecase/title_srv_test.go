package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Alexandra1624/infra-sp2/internal/data/repository"
	"github.com/Alexandra1624/infra-sp2/internal/dto/request"
	"github.com/Alexandra1624/infra-sp2/pkg/apperr"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCatalogFixture(t *testing.T) (*repository.Repository, TitleService, CategoryService, GenreService) {
	t.Helper()
	repo, _, _, _, _ := newStubRepository()
	log := zap.NewNop()
	return repo, NewTitleService(repo, log), NewCategoryService(repo.Category, log), NewGenreService(repo.Genre, log)
}

func seedCatalog(t *testing.T, categories CategoryService, genres GenreService) {
	t.Helper()
	_, err := categories.Create(context.Background(), &request.CreateCategoryRequest{Name: "Movies", Slug: "movies"})
	require.NoError(t, err)
	_, err = genres.Create(context.Background(), &request.CreateGenreRequest{Name: "Drama", Slug: "drama"})
	require.NoError(t, err)
	_, err = genres.Create(context.Background(), &request.CreateGenreRequest{Name: "Sci-Fi", Slug: "sci-fi"})
	require.NoError(t, err)
}

func TestTitleCreate(t *testing.T) {
	_, titles, categories, genres := newCatalogFixture(t)
	seedCatalog(t, categories, genres)

	resp, err := titles.Create(context.Background(), &request.CreateTitleRequest{
		Name:     "Dune",
		Year:     2021,
		Category: "movies",
		Genres:   []string{"drama", "sci-fi"},
	})
	require.NoError(t, err)
	require.Equal(t, "Dune", resp.Name)
	require.NotNil(t, resp.Category)
	require.Equal(t, "movies", resp.Category.Slug)
	require.Len(t, resp.Genres, 2)
	require.Nil(t, resp.Rating)
}

func TestTitleCreate_FutureYearRejected(t *testing.T) {
	_, titles, categories, genres := newCatalogFixture(t)
	seedCatalog(t, categories, genres)

	_, err := titles.Create(context.Background(), &request.CreateTitleRequest{
		Name:     "From the future",
		Year:     time.Now().Year() + 1,
		Category: "movies",
		Genres:   []string{"drama"},
	})
	require.Error(t, err)
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestTitleCreate_UnknownReferences(t *testing.T) {
	_, titles, categories, genres := newCatalogFixture(t)
	seedCatalog(t, categories, genres)
	ctx := context.Background()

	_, err := titles.Create(ctx, &request.CreateTitleRequest{
		Name:     "Dune",
		Year:     2021,
		Category: "books",
		Genres:   []string{"drama"},
	})
	require.Error(t, err)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = titles.Create(ctx, &request.CreateTitleRequest{
		Name:     "Dune",
		Year:     2021,
		Category: "movies",
		Genres:   []string{"drama", "western"},
	})
	require.Error(t, err)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestTitleUpdate_PartialKeepsGenres(t *testing.T) {
	_, titles, categories, genres := newCatalogFixture(t)
	seedCatalog(t, categories, genres)
	ctx := context.Background()

	created, err := titles.Create(ctx, &request.CreateTitleRequest{
		Name:     "Dune",
		Year:     2021,
		Category: "movies",
		Genres:   []string{"drama", "sci-fi"},
	})
	require.NoError(t, err)

	name := "Dune: Part One"
	resp, err := titles.Update(ctx, created.ID, &request.UpdateTitleRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, name, resp.Name)
	require.Len(t, resp.Genres, 2)
	require.Equal(t, 2021, resp.Year)
}

func TestTitleDelete(t *testing.T) {
	_, titles, categories, genres := newCatalogFixture(t)
	seedCatalog(t, categories, genres)
	ctx := context.Background()

	created, err := titles.Create(ctx, &request.CreateTitleRequest{
		Name:     "Dune",
		Year:     2021,
		Category: "movies",
		Genres:   []string{"drama"},
	})
	require.NoError(t, err)

	require.NoError(t, titles.Delete(ctx, created.ID))

	_, err = titles.GetByID(ctx, created.ID)
	require.Error(t, err)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCategoryLifecycle(t *testing.T) {
	_, _, categories, _ := newCatalogFixture(t)
	ctx := context.Background()

	_, err := categories.Create(ctx, &request.CreateCategoryRequest{Name: "Movies", Slug: "movies"})
	require.NoError(t, err)

	// Duplicate slug is a conflict.
	_, err = categories.Create(ctx, &request.CreateCategoryRequest{Name: "Films", Slug: "movies"})
	require.Error(t, err)
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// Slug format is validated.
	_, err = categories.Create(ctx, &request.CreateCategoryRequest{Name: "Bad", Slug: "no spaces!"})
	require.Error(t, err)
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	page, err := categories.GetAll(ctx, "", &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)

	require.NoError(t, categories.DeleteBySlug(ctx, "movies"))

	err = categories.DeleteBySlug(ctx, "movies")
	require.Error(t, err)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGenreSearch(t *testing.T) {
	_, _, _, genres := newCatalogFixture(t)
	ctx := context.Background()

	for _, g := range []request.CreateGenreRequest{
		{Name: "Drama", Slug: "drama"},
		{Name: "Dramedy", Slug: "dramedy"},
		{Name: "Western", Slug: "western"},
	} {
		req := g
		_, err := genres.Create(ctx, &req)
		require.NoError(t, err)
	}

	page, err := genres.GetAll(ctx, "dram", &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	require.Equal(t, int64(2), page.Pagination.Total)
}
