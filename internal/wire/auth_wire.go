package wire

import (
	"github.com/Alexandra1624/infra-sp2/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAuth configures the public signup and token endpoints
func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.SignUp)
		r.Post("/token", authHandler.Token)
	})
}
