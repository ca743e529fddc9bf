package checkout

type CheckoutResponse struct {
	Outcome         Outcome  `json:"outcome"`
	OrderRef        string   `json:"order_ref"`
	Message         string   `json:"message,omitempty"`
	TicketCount     int      `json:"ticket_count,omitempty"`
	SeatIDs         []string `json:"seat_ids,omitempty"`
	TotalMinorUnits int64    `json:"total_minor_units,omitempty"`
	Total           string   `json:"total,omitempty"`
	Currency        string   `json:"currency,omitempty"`
}
