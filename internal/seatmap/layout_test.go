package seatmap_test

import (
	"testing"

	"cinepass/internal/seatmap"

	"github.com/stretchr/testify/assert"
)

func TestRowLabel(t *testing.T) {
	assert.Equal(t, "A", seatmap.RowLabel(0))
	assert.Equal(t, "J", seatmap.RowLabel(9))
	assert.Equal(t, "L", seatmap.RowLabel(11))
	assert.Equal(t, "Z", seatmap.RowLabel(25))

	// Deep halls roll over to double letters instead of dropping off the
	// alphabet
	assert.Equal(t, "AA", seatmap.RowLabel(26))
	assert.Equal(t, "AB", seatmap.RowLabel(27))
	assert.Equal(t, "AZ", seatmap.RowLabel(51))
	assert.Equal(t, "BA", seatmap.RowLabel(52))

	assert.Equal(t, "", seatmap.RowLabel(-1))
}

func TestSeatIDRoundTrip(t *testing.T) {
	cases := []struct {
		rowIndex int
		number   int
		id       string
	}{
		{0, 1, "A1"},
		{2, 5, "C5"},
		{9, 8, "J8"},
		{25, 12, "Z12"},
		{26, 3, "AA3"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.id, seatmap.SeatID(tc.rowIndex, tc.number))

		rowIndex, number, ok := seatmap.ParseSeatID(tc.id)
		assert.True(t, ok, tc.id)
		assert.Equal(t, tc.rowIndex, rowIndex, tc.id)
		assert.Equal(t, tc.number, number, tc.id)
	}
}

func TestParseSeatID_Invalid(t *testing.T) {
	for _, id := range []string{"", "A", "7", "A0", "a1", "A-1", "1A", "A1B"} {
		_, _, ok := seatmap.ParseSeatID(id)
		assert.False(t, ok, id)
	}
}

func TestInGrid(t *testing.T) {
	assert.True(t, seatmap.InGrid("A1", 10, 8))
	assert.True(t, seatmap.InGrid("J8", 10, 8))
	assert.False(t, seatmap.InGrid("K1", 10, 8))
	assert.False(t, seatmap.InGrid("A9", 10, 8))
	assert.False(t, seatmap.InGrid("garbage", 10, 8))
}

func TestAisleColumn(t *testing.T) {
	assert.Equal(t, 4, seatmap.AisleColumn(8))
	assert.Equal(t, 4, seatmap.AisleColumn(7))
	assert.Equal(t, 5, seatmap.AisleColumn(9))
	assert.Equal(t, 1, seatmap.AisleColumn(1))
}

func TestGenerateLayout_Dimensions(t *testing.T) {
	layout := seatmap.GenerateLayout(10, 8, nil, nil)

	assert.Len(t, layout, 10)
	for _, row := range layout {
		assert.Len(t, row, 8)
	}

	assert.Equal(t, "A1", layout[0][0].ID)
	assert.Equal(t, "J8", layout[9][7].ID)
	assert.Equal(t, "C", layout[2][4].Row)
	assert.Equal(t, 5, layout[2][4].Number)

	assert.Nil(t, seatmap.GenerateLayout(0, 8, nil, nil))
	assert.Nil(t, seatmap.GenerateLayout(10, 0, nil, nil))
}

func TestGenerateLayout_Flags(t *testing.T) {
	booked := seatmap.NewSet("B2", "B3")
	selected := seatmap.NewSet("D4")

	layout := seatmap.GenerateLayout(10, 8, booked, selected)

	assert.True(t, layout[1][1].IsBooked)
	assert.True(t, layout[1][2].IsBooked)
	assert.False(t, layout[1][1].IsSelected)
	assert.True(t, layout[3][3].IsSelected)
	assert.False(t, layout[0][0].IsBooked)
	assert.False(t, layout[0][0].IsSelected)

	// Aisle marker sits on the middle column for every row
	for r := range layout {
		for _, seat := range layout[r] {
			assert.Equal(t, seat.Number == 4, seat.IsAisle, seat.ID)
		}
	}
}

func TestGenerateLayout_Pure(t *testing.T) {
	booked := seatmap.NewSet("A1")

	first := seatmap.GenerateLayout(2, 2, booked, nil)
	second := seatmap.GenerateLayout(2, 2, nil, nil)

	// Re-deriving without the booked set yields a clean grid; the first
	// result keeps its flags
	assert.True(t, first[0][0].IsBooked)
	assert.False(t, second[0][0].IsBooked)
}

func TestToggleSeat_AddAndRemove(t *testing.T) {
	booked := seatmap.NewSet()

	selection := seatmap.ToggleSeat("C5", booked, nil)
	assert.Equal(t, []string{"C5"}, selection)

	selection = seatmap.ToggleSeat("A1", booked, selection)
	assert.Equal(t, []string{"C5", "A1"}, selection)

	// Toggling again removes, preserving the order of the rest
	selection = seatmap.ToggleSeat("C5", booked, selection)
	assert.Equal(t, []string{"A1"}, selection)
}

func TestToggleSeat_BookedIsInert(t *testing.T) {
	booked := seatmap.NewSet("B2")

	selection := seatmap.ToggleSeat("B2", booked, []string{"A1"})
	assert.Equal(t, []string{"A1"}, selection)
}

func TestToggleSeat_DoesNotMutateInput(t *testing.T) {
	original := []string{"A1", "B2"}

	_ = seatmap.ToggleSeat("C3", nil, original)
	_ = seatmap.ToggleSeat("A1", nil, original)

	assert.Equal(t, []string{"A1", "B2"}, original)
}
