package database

import (
	"cinepass/internal/concessions"
	"cinepass/internal/movies"
	"cinepass/internal/showtimes"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&movies.Movie{},
		&showtimes.Theater{},
		&showtimes.Showtime{},
		&showtimes.Ticket{},
		&concessions.FoodItem{},
	)
}
