package wire

import (
	"net/http"
	"time"

	"github.com/Alexandra1624/infra-sp2/internal/adaptor"
	"github.com/Alexandra1624/infra-sp2/internal/data/repository"
	"github.com/Alexandra1624/infra-sp2/internal/usecase"
	"github.com/Alexandra1624/infra-sp2/pkg/mailer"
	"github.com/Alexandra1624/infra-sp2/pkg/middleware"
	"github.com/Alexandra1624/infra-sp2/pkg/token"
	"github.com/Alexandra1624/infra-sp2/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	mail := mailer.New(config.Email, logger)
	issuer := token.NewIssuer(config.JWT.Secret, time.Duration(config.JWT.ExpiryHours)*time.Hour)

	service := usecase.NewService(repo, config, mail, issuer, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, issuer, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	issuer *token.Issuer,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, repo, issuer, logger)
	wireCatalog(r, handler, repo, issuer, logger)
	wireContent(r, handler, issuer, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
