package movies

import "time"

type MovieResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Genre       string    `json:"genre"`
	Rating      float64   `json:"rating"`
	DurationMin int       `json:"duration_min"`
	PosterURL   string    `json:"poster_url,omitempty"`
	ReleaseDate time.Time `json:"release_date"`
}

func toMovieResponse(m *Movie) MovieResponse {
	return MovieResponse{
		ID:          m.ID.String(),
		Title:       m.Title,
		Description: m.Description,
		Genre:       m.Genre,
		Rating:      m.Rating,
		DurationMin: m.DurationMin,
		PosterURL:   m.PosterURL,
		ReleaseDate: m.ReleaseDate,
	}
}

func toMovieResponses(movies []Movie) []MovieResponse {
	out := make([]MovieResponse, 0, len(movies))
	for i := range movies {
		out = append(out, toMovieResponse(&movies[i]))
	}
	return out
}
