package response

import (
	"time"

	"github.com/Alexandra1624/infra-sp2/internal/data/entity"
)

type ReviewResponse struct {
	ID      string    `json:"id"`
	TitleID string    `json:"title_id"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
}

type CommentResponse struct {
	ID       string    `json:"id"`
	ReviewID string    `json:"review_id"`
	Author   string    `json:"author"`
	Text     string    `json:"text"`
	PubDate  time.Time `json:"pub_date"`
}

func ReviewToResponse(review *entity.Review, author string) ReviewResponse {
	return ReviewResponse{
		ID:      review.ID.String(),
		TitleID: review.TitleID.String(),
		Author:  author,
		Text:    review.Text,
		Score:   review.Score,
		PubDate: review.CreatedAt,
	}
}

func CommentToResponse(comment *entity.Comment, author string) CommentResponse {
	return CommentResponse{
		ID:       comment.ID.String(),
		ReviewID: comment.ReviewID.String(),
		Author:   author,
		Text:     comment.Text,
		PubDate:  comment.CreatedAt,
	}
}
