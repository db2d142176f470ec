package wire

import (
	"github.com/Alexandra1624/infra-sp2/internal/adaptor"
	"github.com/Alexandra1624/infra-sp2/pkg/middleware"
	"github.com/Alexandra1624/infra-sp2/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireContent configures the nested review and comment routes.
// Reads are public; writes require authentication, with per-object
// ownership checks enforced in the services.
func wireContent(
	r chi.Router,
	handler *adaptor.Handler,
	issuer *token.Issuer,
	log *zap.Logger,
) {
	auth := middleware.Auth(issuer, log)

	r.Route("/api/v1/titles/{titleID}/reviews", func(r chi.Router) {
		r.Get("/", handler.Review.GetByTitle)
		r.Get("/{reviewID}", handler.Review.Get)

		r.With(auth).Post("/", handler.Review.Create)
		r.With(auth).Patch("/{reviewID}", handler.Review.Update)
		r.With(auth).Delete("/{reviewID}", handler.Review.Delete)

		r.Route("/{reviewID}/comments", func(r chi.Router) {
			r.Get("/", handler.Comment.GetByReview)
			r.Get("/{commentID}", handler.Comment.Get)

			r.With(auth).Post("/", handler.Comment.Create)
			r.With(auth).Patch("/{commentID}", handler.Comment.Update)
			r.With(auth).Delete("/{commentID}", handler.Comment.Delete)
		})
	})
}
