package cart_test

import (
	"testing"

	"cinepass/internal/cart"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCart_SetSelectedSeatsDeduplicates(t *testing.T) {
	c := cart.NewCart()

	c.SetSelectedSeats([]string{"A1", "B2", "A1", "C3", "B2"})

	assert.Equal(t, []string{"A1", "B2", "C3"}, c.SelectedSeats())
}

func TestCart_SelectedSeatsReturnsCopy(t *testing.T) {
	c := cart.NewCart()
	c.SetSelectedSeats([]string{"A1", "B2"})

	seats := c.SelectedSeats()
	seats[0] = "Z9"

	assert.Equal(t, []string{"A1", "B2"}, c.SelectedSeats())
}

func TestCart_AddFoodItemIncrementsExisting(t *testing.T) {
	c := cart.NewCart()

	c.AddFoodItem("popcorn", "Popcorn", price("5.00"))
	c.AddFoodItem("soda", "Soda", price("3.25"))
	c.AddFoodItem("popcorn", "Popcorn", price("5.00"))

	snap := c.Snapshot()
	assert.Len(t, snap.FoodLines, 2)
	assert.Equal(t, "popcorn", snap.FoodLines[0].ID)
	assert.Equal(t, 2, snap.FoodLines[0].Quantity)
	assert.Equal(t, 1, snap.FoodLines[1].Quantity)
}

func TestCart_AddFoodItemKeepsFirstPrice(t *testing.T) {
	c := cart.NewCart()

	c.AddFoodItem("popcorn", "Popcorn", price("5.00"))
	// A menu reprice mid-session must not change lines already in the cart
	c.AddFoodItem("popcorn", "Popcorn", price("6.00"))

	snap := c.Snapshot()
	assert.Equal(t, 2, snap.FoodLines[0].Quantity)
	assert.True(t, snap.FoodLines[0].UnitPrice.Equal(price("5.00")))
}

func TestCart_UpdateFoodItemQuantity(t *testing.T) {
	c := cart.NewCart()
	c.AddFoodItem("popcorn", "Popcorn", price("5.00"))

	c.UpdateFoodItemQuantity("popcorn", 4)
	assert.Equal(t, 4, c.Snapshot().FoodLines[0].Quantity)

	// Zero or negative removes the line
	c.UpdateFoodItemQuantity("popcorn", 0)
	assert.Empty(t, c.Snapshot().FoodLines)
}

func TestCart_UpdateUnknownFoodItemIsNoOp(t *testing.T) {
	c := cart.NewCart()
	c.AddFoodItem("popcorn", "Popcorn", price("5.00"))

	c.UpdateFoodItemQuantity("nachos", 3)

	snap := c.Snapshot()
	assert.Len(t, snap.FoodLines, 1)
	assert.Equal(t, "popcorn", snap.FoodLines[0].ID)
}

func TestCart_RemoveFoodItem(t *testing.T) {
	c := cart.NewCart()
	c.AddFoodItem("popcorn", "Popcorn", price("5.00"))
	c.AddFoodItem("soda", "Soda", price("3.25"))

	c.RemoveFoodItem("popcorn")

	snap := c.Snapshot()
	assert.Len(t, snap.FoodLines, 1)
	assert.Equal(t, "soda", snap.FoodLines[0].ID)

	// Removing it twice is harmless
	c.RemoveFoodItem("popcorn")
	assert.Len(t, c.Snapshot().FoodLines, 1)
}

func TestCart_FoodSurvivesShowtimeChange(t *testing.T) {
	c := cart.NewCart()
	c.AddFoodItem("popcorn", "Popcorn", price("5.00"))
	c.SetSelectedSeats([]string{"A1"})

	c.SetShowtime(&cart.ShowtimeInfo{ID: "st-1", Price: price("12.50")})
	c.SetShowtime(&cart.ShowtimeInfo{ID: "st-2", Price: price("15.00")})

	snap := c.Snapshot()
	assert.Equal(t, "st-2", snap.Showtime.ID)
	assert.Len(t, snap.FoodLines, 1)
	assert.Equal(t, []string{"A1"}, snap.SelectedSeats)
}

func TestCart_Clear(t *testing.T) {
	c := cart.NewCart()
	c.SetSelectedSeats([]string{"A1", "B2"})
	c.AddFoodItem("popcorn", "Popcorn", price("5.00"))
	c.SetShowtime(&cart.ShowtimeInfo{ID: "st-1", Price: price("12.50")})
	c.SetMovie(&cart.MovieInfo{ID: "mv-1", Title: "Test"})

	c.Clear()

	snap := c.Snapshot()
	assert.True(t, snap.IsEmpty())
	assert.Empty(t, snap.SelectedSeats)
	assert.Empty(t, snap.FoodLines)
	assert.Nil(t, snap.Showtime)
	assert.Nil(t, snap.Movie)
}

func TestCart_SnapshotIsolation(t *testing.T) {
	c := cart.NewCart()
	c.SetSelectedSeats([]string{"A1"})
	c.SetShowtime(&cart.ShowtimeInfo{ID: "st-1", Price: price("12.50")})

	snap := c.Snapshot()
	snap.SelectedSeats[0] = "Z9"
	snap.Showtime.ID = "mutated"

	fresh := c.Snapshot()
	assert.Equal(t, []string{"A1"}, fresh.SelectedSeats)
	assert.Equal(t, "st-1", fresh.Showtime.ID)
}

func TestBreakdown_TotalsAcrossSeatsAndFood(t *testing.T) {
	c := cart.NewCart()
	c.SetShowtime(&cart.ShowtimeInfo{ID: "st-1", Price: price("12.50")})
	c.SetSelectedSeats([]string{"A1", "B2", "C3"})
	c.AddFoodItem("popcorn", "Popcorn", price("5.00"))
	c.AddFoodItem("popcorn", "Popcorn", price("5.00"))
	c.AddFoodItem("soda", "Soda", price("3.25"))

	b := cart.Breakdown(c.Snapshot())

	assert.Equal(t, "37.50", b.SeatSubtotal.StringFixed(2))
	assert.Equal(t, "13.25", b.FoodSubtotal.StringFixed(2))
	assert.Equal(t, "50.75", b.GrandTotal.StringFixed(2))
}

func TestBreakdown_NoShowtimePricesSeatsAtZero(t *testing.T) {
	c := cart.NewCart()
	c.SetSelectedSeats([]string{"A1", "B2"})
	c.AddFoodItem("soda", "Soda", price("3.25"))

	b := cart.Breakdown(c.Snapshot())

	assert.True(t, b.SeatSubtotal.Equal(decimal.Zero))
	assert.Equal(t, "3.25", b.GrandTotal.StringFixed(2))
}
