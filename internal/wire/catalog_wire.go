package wire

import (
	"github.com/Alexandra1624/infra-sp2/internal/adaptor"
	"github.com/Alexandra1624/infra-sp2/internal/data/repository"
	"github.com/Alexandra1624/infra-sp2/pkg/middleware"
	"github.com/Alexandra1624/infra-sp2/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireCatalog configures category, genre and title routes.
// Reads are public; writes require an admin.
func wireCatalog(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	issuer *token.Issuer,
	log *zap.Logger,
) {
	admin := chi.Middlewares{
		middleware.Auth(issuer, log),
		middleware.Admin(repo.User, log),
	}

	// ==================== PUBLIC CATALOG READS ====================
	r.Get("/api/v1/categories", handler.Category.GetAll)
	r.Get("/api/v1/genres", handler.Genre.GetAll)
	r.Get("/api/v1/titles", handler.Title.GetAll)
	r.Get("/api/v1/titles/{titleID}", handler.Title.Get)

	// ==================== ADMIN CATALOG WRITES ====================
	r.With(admin...).Post("/api/v1/categories", handler.Category.Create)
	r.With(admin...).Delete("/api/v1/categories/{slug}", handler.Category.Delete)

	r.With(admin...).Post("/api/v1/genres", handler.Genre.Create)
	r.With(admin...).Delete("/api/v1/genres/{slug}", handler.Genre.Delete)

	r.With(admin...).Post("/api/v1/titles", handler.Title.Create)
	r.With(admin...).Patch("/api/v1/titles/{titleID}", handler.Title.Update)
	r.With(admin...).Delete("/api/v1/titles/{titleID}", handler.Title.Delete)
}
