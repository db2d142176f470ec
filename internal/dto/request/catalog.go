package request

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=256"`
	Slug string `json:"slug" validate:"required,max=50,slug"`
}

type CreateGenreRequest struct {
	Name string `json:"name" validate:"required,max=256"`
	Slug string `json:"slug" validate:"required,max=50,slug"`
}

type CreateTitleRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Year        int      `json:"year" validate:"required,min=0"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Category    string   `json:"category" validate:"required,slug"`
	Genres      []string `json:"genre" validate:"required,min=1,dive,slug"`
}

type UpdateTitleRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Year        *int     `json:"year,omitempty" validate:"omitempty,min=0"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,slug"`
	Genres      []string `json:"genre,omitempty" validate:"omitempty,min=1,dive,slug"`
}
