package repository

import (
	"errors"

	"github.com/Alexandra1624/infra-sp2/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Category CategoryRepository
	Genre    GenreRepository
	Title    TitleRepository
	Review   ReviewRepository
	Comment  CommentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Category: NewCategoryRepository(db, log),
		Genre:    NewGenreRepository(db, log),
		Title:    NewTitleRepository(db, log),
		Review:   NewReviewRepository(db, log),
		Comment:  NewCommentRepository(db, log),
	}
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation. The constraints in schema.sql are the source of truth for
// username/email uniqueness and the one-review-per-title rule.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
