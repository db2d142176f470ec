package response

import (
	"time"

	"github.com/Alexandra1624/infra-sp2/internal/data/entity"
)

type CategoryResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type GenreResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type TitleResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Year        int               `json:"year"`
	Description *string           `json:"description,omitempty"`
	Rating      *float64          `json:"rating"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Genres      []GenreResponse   `json:"genre"`
	CreatedAt   time.Time         `json:"created_at"`
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		Name: category.Name,
		Slug: category.Slug,
	}
}

func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		Name: genre.Name,
		Slug: genre.Slug,
	}
}

func TitleToResponse(title *entity.Title, category *entity.Category, genres []*entity.Genre) TitleResponse {
	resp := TitleResponse{
		ID:          title.ID.String(),
		Name:        title.Name,
		Year:        title.Year,
		Description: title.Description,
		Rating:      title.Rating,
		Genres:      make([]GenreResponse, 0, len(genres)),
		CreatedAt:   title.CreatedAt,
	}

	if category != nil {
		c := CategoryToResponse(category)
		resp.Category = &c
	}

	for _, genre := range genres {
		resp.Genres = append(resp.Genres, GenreToResponse(genre))
	}

	return resp
}
