package entity

import (
	"github.com/google/uuid"
)

type Title struct {
	Base
	Name        string     `db:"name"`
	Year        int        `db:"year"`
	Description *string    `db:"description"`
	CategoryID  *uuid.UUID `db:"category_id"`
	Rating      *float64   `db:"rating"` // AVG(reviews.score), nil when unreviewed
}

// TitleGenre links a title to one of its genres.
type TitleGenre struct {
	TitleID uuid.UUID `db:"title_id"`
	GenreID uuid.UUID `db:"genre_id"`
}
