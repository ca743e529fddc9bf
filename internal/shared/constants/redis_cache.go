package constants

import (
	"fmt"
	"time"
)

// Redis cache keys and TTLs for the cinepass application.
// Pattern: cinepass:{module}:{operation}:{identifier}

const CachePrefix = "cinepass"

// TTLs
const (
	// Booked-seat snapshots go stale the moment another buyer pays, so the
	// window is kept short.
	TTLBookedSeats = 30 * time.Second

	// Catalog data (movies, food menu) changes rarely.
	TTLCatalog = 15 * time.Minute

	// Showtime listings change when screenings are added or sell out.
	TTLShowtimes = 5 * time.Minute
)

// Key builders

func BuildBookedSeatsKey(showtimeID string) string {
	return fmt.Sprintf("%s:showtimes:booked:%s", CachePrefix, showtimeID)
}

func BuildShowtimeDetailKey(showtimeID string) string {
	return fmt.Sprintf("%s:showtimes:detail:%s", CachePrefix, showtimeID)
}

func BuildMovieListKey(genre, search string) string {
	if genre == "" {
		genre = "all"
	}
	return fmt.Sprintf("%s:movies:list:%s:q:%s", CachePrefix, genre, search)
}

func BuildMovieDetailKey(movieID string) string {
	return fmt.Sprintf("%s:movies:detail:%s", CachePrefix, movieID)
}

func BuildFoodMenuKey(category string) string {
	if category == "" {
		category = "all"
	}
	return fmt.Sprintf("%s:concessions:menu:%s", CachePrefix, category)
}

// Invalidation patterns

func MovieListPattern() string {
	return fmt.Sprintf("%s:movies:list:*", CachePrefix)
}

func FoodMenuPattern() string {
	return fmt.Sprintf("%s:concessions:menu:*", CachePrefix)
}

func BookedSeatsPattern() string {
	return fmt.Sprintf("%s:showtimes:booked:*", CachePrefix)
}
