package showtimes

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, showtime *Showtime) error
	GetByID(ctx context.Context, id uuid.UUID) (*Showtime, error)
	ListByMovie(ctx context.Context, movieID uuid.UUID, upcomingOnly bool) ([]Showtime, error)
	ListByTheater(ctx context.Context, theaterID uuid.UUID, upcomingOnly bool) ([]Showtime, error)

	CreateTheater(ctx context.Context, theater *Theater) error
	GetTheaterByID(ctx context.Context, id uuid.UUID) (*Theater, error)
	ListTheaters(ctx context.Context) ([]Theater, error)

	BookedSeatNumbers(ctx context.Context, showtimeID uuid.UUID) ([]string, error)
	CreateTickets(ctx context.Context, tickets []Ticket) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, showtime *Showtime) error {
	return r.db.WithContext(ctx).Create(showtime).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Showtime, error) {
	var showtime Showtime
	err := r.db.WithContext(ctx).Preload("Theater").Where("id = ?", id).First(&showtime).Error
	if err != nil {
		return nil, err
	}
	return &showtime, nil
}

func (r *repository) ListByMovie(ctx context.Context, movieID uuid.UUID, upcomingOnly bool) ([]Showtime, error) {
	var results []Showtime

	db := r.db.WithContext(ctx).Where("movie_id = ?", movieID)
	if upcomingOnly {
		db = db.Where("start_time > ?", time.Now())
	}

	err := db.Order("start_time ASC").Find(&results).Error
	return results, err
}

func (r *repository) ListByTheater(ctx context.Context, theaterID uuid.UUID, upcomingOnly bool) ([]Showtime, error) {
	var results []Showtime

	db := r.db.WithContext(ctx).Where("theater_id = ?", theaterID)
	if upcomingOnly {
		db = db.Where("start_time > ?", time.Now())
	}

	err := db.Order("start_time ASC").Find(&results).Error
	return results, err
}

func (r *repository) CreateTheater(ctx context.Context, theater *Theater) error {
	return r.db.WithContext(ctx).Create(theater).Error
}

func (r *repository) GetTheaterByID(ctx context.Context, id uuid.UUID) (*Theater, error) {
	var theater Theater
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&theater).Error
	if err != nil {
		return nil, err
	}
	return &theater, nil
}

func (r *repository) ListTheaters(ctx context.Context) ([]Theater, error) {
	var theaters []Theater
	err := r.db.WithContext(ctx).Order("name ASC").Find(&theaters).Error
	return theaters, err
}

// BookedSeatNumbers returns the seat numbers of every sold ticket for a
// showtime.
func (r *repository) BookedSeatNumbers(ctx context.Context, showtimeID uuid.UUID) ([]string, error) {
	var seatNumbers []string

	if err := r.db.WithContext(ctx).
		Model(&Ticket{}).
		Where("showtime_id = ?", showtimeID).
		Pluck("seat_number", &seatNumbers).Error; err != nil {
		return nil, fmt.Errorf("failed to query sold tickets: %w", err)
	}

	return seatNumbers, nil
}

// CreateTickets persists all tickets of one order in a single transaction so
// an order is never half-sold.
func (r *repository) CreateTickets(ctx context.Context, tickets []Ticket) error {
	if len(tickets) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&tickets).Error; err != nil {
			return fmt.Errorf("failed to create tickets: %w", err)
		}
		return nil
	})
}
