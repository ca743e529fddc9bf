package showtimes

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Theater is one cinema location. Geolocation ranking happens client-side;
// the coordinates are just passed through.
type Theater struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	City      string    `gorm:"index" json:"city"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Showtime is one scheduled screening: one movie, one hall, one start time,
// one uniform per-seat price. The hall grid dimensions live here so the seat
// map can be generated without a separate hall entity.
type Showtime struct {
	ID         uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	MovieID    uuid.UUID       `gorm:"type:uuid;index;not null" json:"movie_id"`
	TheaterID  uuid.UUID       `gorm:"type:uuid;index;not null" json:"theater_id"`
	HallNumber int             `gorm:"not null" json:"hall_number"`
	StartTime  time.Time       `gorm:"index;not null" json:"start_time"`
	EndTime    time.Time       `gorm:"not null" json:"end_time"`
	Is3D       bool            `gorm:"default:false" json:"is_3d"`
	Price      decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"price"`
	Rows       int             `gorm:"not null;default:10" json:"rows"`
	Columns    int             `gorm:"not null;default:8" json:"columns"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	// Relationships
	Theater *Theater `json:"theater,omitempty" gorm:"foreignKey:TheaterID"`
	Tickets []Ticket `json:"tickets,omitempty" gorm:"foreignKey:ShowtimeID;constraint:OnDelete:RESTRICT;"`
}

// Ticket is one sold seat for one showtime. The set of ticket seat numbers
// for a showtime is the booked-seats source of truth.
//
// The unique index rejects a second ticket for the same seat at persist time.
// That is data integrity, not a reservation step: two buyers can still both
// reach payment for the same seat, and the loser only fails at ticket
// creation after paying.
type Ticket struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ShowtimeID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_showtime_seat" json:"showtime_id"`
	SeatNumber string    `gorm:"not null;uniqueIndex:idx_showtime_seat" json:"seat_number"`
	OrderRef   string    `gorm:"index;not null" json:"order_ref"`
	SoldAt     time.Time `json:"sold_at"`
}

// TableName sets the table name for Theater
func (Theater) TableName() string {
	return "theaters"
}

// TableName sets the table name for Showtime
func (Showtime) TableName() string {
	return "showtimes"
}

// TableName sets the table name for Ticket
func (Ticket) TableName() string {
	return "tickets"
}

// IsUpcoming reports whether the screening has not started yet.
func (s *Showtime) IsUpcoming() bool {
	return s.StartTime.After(time.Now())
}

// GridRows returns the hall row count, falling back to the default layout.
func (s *Showtime) GridRows(fallback int) int {
	if s.Rows > 0 {
		return s.Rows
	}
	return fallback
}

// GridColumns returns the hall column count, falling back to the default layout.
func (s *Showtime) GridColumns(fallback int) int {
	if s.Columns > 0 {
		return s.Columns
	}
	return fallback
}
