// Package pricing centralizes every money computation for the booking flow.
// All arithmetic runs on exact decimals so repeated additions never drift the
// way native floating point would; callers convert to minor units only at the
// payment boundary.
package pricing

import "github.com/shopspring/decimal"

// Line is one priced concession entry: unit price captured at add-time and the
// current quantity.
type Line struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Breakdown is the derived money view of a cart.
type Breakdown struct {
	SeatSubtotal decimal.Decimal `json:"seat_subtotal"`
	FoodSubtotal decimal.Decimal `json:"food_subtotal"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
}

// SeatSubtotal prices seatCount seats at the showtime's uniform per-seat
// price. There is no seat-tier pricing: every seat of one showtime costs the
// same.
func SeatSubtotal(seatCount int, perSeat decimal.Decimal) decimal.Decimal {
	if seatCount <= 0 {
		return decimal.Zero
	}
	return perSeat.Mul(decimal.NewFromInt(int64(seatCount)))
}

// LineTotal prices one concession line: unit price times quantity.
func LineTotal(l Line) decimal.Decimal {
	if l.Quantity <= 0 {
		return decimal.Zero
	}
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// FoodSubtotal sums LineTotal over all concession lines.
func FoodSubtotal(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(LineTotal(l))
	}
	return total
}

// GrandTotal is the seat subtotal plus the food subtotal.
func GrandTotal(seatSubtotal, foodSubtotal decimal.Decimal) decimal.Decimal {
	return seatSubtotal.Add(foodSubtotal)
}

// Compute derives the full breakdown in one pass.
func Compute(seatCount int, perSeat decimal.Decimal, lines []Line) Breakdown {
	seats := SeatSubtotal(seatCount, perSeat)
	food := FoodSubtotal(lines)
	return Breakdown{
		SeatSubtotal: seats,
		FoodSubtotal: food,
		GrandTotal:   GrandTotal(seats, food),
	}
}

// MinorUnits converts an amount to integer minor currency units (cents),
// rounding half-up at the second decimal place. Payment providers take
// amounts in this form.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Round(2).Mul(decimal.NewFromInt(100)).IntPart()
}

// Display renders an amount rounded to two decimal places for presentation.
func Display(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
