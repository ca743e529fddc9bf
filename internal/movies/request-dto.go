package movies

import "time"

type CreateMovieRequest struct {
	Title       string    `json:"title" binding:"required,min=1,max=255"`
	Description string    `json:"description" binding:"max=2000"`
	Genre       string    `json:"genre" binding:"required,min=1,max=100"`
	Rating      float64   `json:"rating" binding:"min=0,max=10"`
	DurationMin int       `json:"duration_min" binding:"required,min=1"`
	PosterURL   string    `json:"poster_url" binding:"omitempty,url"`
	ReleaseDate time.Time `json:"release_date" binding:"required"`
}

type ListMoviesQuery struct {
	Genre  string `form:"genre"`
	Search string `form:"q"`
}
