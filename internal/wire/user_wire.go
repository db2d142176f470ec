package wire

import (
	"github.com/Alexandra1624/infra-sp2/internal/adaptor"
	"github.com/Alexandra1624/infra-sp2/internal/data/repository"
	"github.com/Alexandra1624/infra-sp2/pkg/middleware"
	"github.com/Alexandra1624/infra-sp2/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures user management routes with role-based access control
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	issuer *token.Issuer,
	log *zap.Logger,
) {
	// ==================== SELF-SERVICE PROFILE ====================
	// "me" must be matched before the admin {username} routes below.
	r.With(middleware.Auth(issuer, log)).Route("/api/v1/users/me", func(r chi.Router) {
		r.Get("/", userHandler.GetProfile)
		r.Patch("/", userHandler.UpdateProfile)
	})

	// ==================== ADMIN USER MANAGEMENT ====================
	// Requires both authentication AND admin role
	r.With(
		middleware.Auth(issuer, log),
		middleware.Admin(repo.User, log),
	).Route("/api/v1/users", func(r chi.Router) {
		r.Get("/", userHandler.GetAllUsers)
		r.Post("/", userHandler.CreateUser)
		r.Get("/{username}", userHandler.GetUser)
		r.Patch("/{username}", userHandler.UpdateUser)
		r.Delete("/{username}", userHandler.DeleteUser)
	})
}
