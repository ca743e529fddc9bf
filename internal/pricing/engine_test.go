package pricing_test

import (
	"testing"

	"cinepass/internal/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSeatSubtotal(t *testing.T) {
	perSeat := decimal.RequireFromString("12.50")

	assert.True(t, pricing.SeatSubtotal(3, perSeat).Equal(decimal.RequireFromString("37.50")))
	assert.True(t, pricing.SeatSubtotal(0, perSeat).Equal(decimal.Zero))
}

func TestCompute_ExactTotals(t *testing.T) {
	// 3 seats at 12.50 plus 2x5.00 popcorn and 1x3.25 soda: 50.75 exactly,
	// no float drift
	perSeat := decimal.RequireFromString("12.50")
	lines := []pricing.Line{
		{Name: "Popcorn", UnitPrice: decimal.RequireFromString("5.00"), Quantity: 2},
		{Name: "Soda", UnitPrice: decimal.RequireFromString("3.25"), Quantity: 1},
	}

	b := pricing.Compute(3, perSeat, lines)

	assert.Equal(t, "37.50", pricing.Display(b.SeatSubtotal))
	assert.Equal(t, "13.25", pricing.Display(b.FoodSubtotal))
	assert.Equal(t, "50.75", pricing.Display(b.GrandTotal))
}

func TestCompute_EmptyCart(t *testing.T) {
	b := pricing.Compute(0, decimal.Zero, nil)

	assert.True(t, b.SeatSubtotal.Equal(decimal.Zero))
	assert.True(t, b.FoodSubtotal.Equal(decimal.Zero))
	assert.True(t, b.GrandTotal.Equal(decimal.Zero))
	assert.Equal(t, "0.00", pricing.Display(b.GrandTotal))
}

func TestLineTotal(t *testing.T) {
	line := pricing.Line{Name: "Nachos", UnitPrice: decimal.RequireFromString("4.99"), Quantity: 3}

	assert.Equal(t, "14.97", pricing.Display(pricing.LineTotal(line)))
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(5075), pricing.MinorUnits(decimal.RequireFromString("50.75")))
	assert.Equal(t, int64(1250), pricing.MinorUnits(decimal.RequireFromString("12.5")))
	assert.Equal(t, int64(0), pricing.MinorUnits(decimal.Zero))

	// Sub-cent amounts round at the payment boundary
	assert.Equal(t, int64(1000), pricing.MinorUnits(decimal.RequireFromString("9.995")))
}

func TestRepeatedAdditionStaysExact(t *testing.T) {
	// The classic 0.1+0.2 trap: ten 0.10 lines total exactly 1.00
	unit := decimal.RequireFromString("0.10")
	total := decimal.Zero
	for i := 0; i < 10; i++ {
		total = total.Add(unit)
	}

	assert.Equal(t, "1.00", pricing.Display(total))
	assert.Equal(t, int64(100), pricing.MinorUnits(total))
}
