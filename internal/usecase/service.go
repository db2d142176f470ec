package usecase

import (
	"github.com/Alexandra1624/infra-sp2/internal/data/repository"
	"github.com/Alexandra1624/infra-sp2/pkg/mailer"
	"github.com/Alexandra1624/infra-sp2/pkg/token"
	"github.com/Alexandra1624/infra-sp2/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Category CategoryService
	Genre    GenreService
	Title    TitleService
	Review   ReviewService
	Comment  CommentService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	issuer *token.Issuer,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo, mail, issuer, log),
		User:     NewUserService(repo.User, log),
		Category: NewCategoryService(repo.Category, log),
		Genre:    NewGenreService(repo.Genre, log),
		Title:    NewTitleService(repo, log),
		Review:   NewReviewService(repo, log),
		Comment:  NewCommentService(repo, log),
	}
}
