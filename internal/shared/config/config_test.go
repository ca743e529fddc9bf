package config_test

import (
	"testing"

	"cinepass/internal/seatmap"
	"cinepass/internal/shared/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_SeatLayoutDefaultsFollowHallGrid(t *testing.T) {
	t.Setenv("SEAT_DEFAULT_ROWS", "")
	t.Setenv("SEAT_DEFAULT_COLUMNS", "")

	cfg := config.Load()

	assert.Equal(t, seatmap.DefaultRows, cfg.SeatLayout.DefaultRows)
	assert.Equal(t, seatmap.DefaultColumns, cfg.SeatLayout.DefaultColumns)
}

func TestLoad_SeatLayoutOverrides(t *testing.T) {
	t.Setenv("SEAT_DEFAULT_ROWS", "14")
	t.Setenv("SEAT_DEFAULT_COLUMNS", "12")

	cfg := config.Load()

	assert.Equal(t, 14, cfg.SeatLayout.DefaultRows)
	assert.Equal(t, 12, cfg.SeatLayout.DefaultColumns)
}
