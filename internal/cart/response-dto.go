package cart

import "cinepass/internal/pricing"

// View is the API representation of a cart: state plus derived totals.
type View struct {
	SelectedSeats []string       `json:"selected_seats"`
	FoodLines     []FoodLineView `json:"food_lines"`
	Showtime      *ShowtimeInfo  `json:"showtime,omitempty"`
	Movie         *MovieInfo     `json:"movie,omitempty"`
	Totals        TotalsView     `json:"totals"`
}

// FoodLineView is one concession line with its derived line total.
type FoodLineView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

// TotalsView carries display amounts (two decimal places) plus the grand
// total in minor units for payment handoff.
type TotalsView struct {
	SeatSubtotal         string `json:"seat_subtotal"`
	FoodSubtotal         string `json:"food_subtotal"`
	GrandTotal           string `json:"grand_total"`
	GrandTotalMinorUnits int64  `json:"grand_total_minor_units"`
}

func buildView(snap Snapshot) *View {
	breakdown := Breakdown(snap)

	view := &View{
		SelectedSeats: snap.SelectedSeats,
		FoodLines:     make([]FoodLineView, 0, len(snap.FoodLines)),
		Showtime:      snap.Showtime,
		Movie:         snap.Movie,
		Totals: TotalsView{
			SeatSubtotal:         pricing.Display(breakdown.SeatSubtotal),
			FoodSubtotal:         pricing.Display(breakdown.FoodSubtotal),
			GrandTotal:           pricing.Display(breakdown.GrandTotal),
			GrandTotalMinorUnits: pricing.MinorUnits(breakdown.GrandTotal),
		},
	}

	for _, l := range snap.FoodLines {
		view.FoodLines = append(view.FoodLines, FoodLineView{
			ID:        l.ID,
			Name:      l.Name,
			UnitPrice: pricing.Display(l.UnitPrice),
			Quantity:  l.Quantity,
			LineTotal: pricing.Display(pricing.LineTotal(pricing.Line{UnitPrice: l.UnitPrice, Quantity: l.Quantity})),
		})
	}

	return view
}
