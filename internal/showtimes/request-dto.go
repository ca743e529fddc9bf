package showtimes

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateShowtimeRequest struct {
	MovieID    string          `json:"movie_id" binding:"required,uuid"`
	TheaterID  string          `json:"theater_id" binding:"required,uuid"`
	HallNumber int             `json:"hall_number" binding:"required,min=1"`
	StartTime  time.Time       `json:"start_time" binding:"required"`
	EndTime    time.Time       `json:"end_time" binding:"required,gtfield=StartTime"`
	Is3D       bool            `json:"is_3d"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Rows       int             `json:"rows" binding:"omitempty,min=1,max=702"`
	Columns    int             `json:"columns" binding:"omitempty,min=1"`
}

type CreateTheaterRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=255"`
	City      string  `json:"city" binding:"required,min=1,max=100"`
	Address   string  `json:"address" binding:"required,min=1,max=500"`
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
}

type ListShowtimesQuery struct {
	MovieID      string `form:"movie_id" binding:"required,uuid"`
	UpcomingOnly bool   `form:"upcoming_only"`
}
