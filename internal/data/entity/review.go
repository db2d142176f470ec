package entity

import (
	"github.com/google/uuid"
)

// Review holds one user's score for a title. At most one review per
// (title, author) pair; the reviews table enforces it with a unique constraint.
type Review struct {
	BaseSimple
	TitleID  uuid.UUID `db:"title_id"`
	AuthorID uuid.UUID `db:"author_id"`
	Text     string    `db:"text"`
	Score    int       `db:"score"` // 1-10
}
