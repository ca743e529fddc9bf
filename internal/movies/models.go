package movies

import (
	"time"

	"github.com/google/uuid"
)

// Movie is one catalog entry. Ratings and runtime come from the distributor
// feed and are not editable through the API.
type Movie struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string    `gorm:"not null;index" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Genre       string    `gorm:"index" json:"genre"`
	Rating      float64   `json:"rating"`
	DurationMin int       `gorm:"not null" json:"duration_min"`
	PosterURL   string    `json:"poster_url"`
	ReleaseDate time.Time `json:"release_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the table name for Movie
func (Movie) TableName() string {
	return "movies"
}

// IsReleased reports whether the movie's release date has passed.
func (m *Movie) IsReleased() bool {
	return !m.ReleaseDate.After(time.Now())
}
