package cart

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// FoodLine is one priced concession entry in the cart. Identity is by ID, not
// object reference; the unit price is captured when the line is added and is
// not re-fetched on later reads.
type FoodLine struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// ShowtimeInfo is the single active screening a cart is booking against.
type ShowtimeInfo struct {
	ID         string          `json:"id"`
	Price      decimal.Decimal `json:"price"`
	MovieID    string          `json:"movie_id"`
	TheaterID  string          `json:"theater_id"`
	StartTime  time.Time       `json:"start_time"`
	EndTime    time.Time       `json:"end_time"`
	Is3D       bool            `json:"is_3d"`
	HallNumber int             `json:"hall_number"`
}

// MovieInfo is the descriptor of the movie being booked.
type MovieInfo struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Rating      float64 `json:"rating"`
	DurationMin int     `json:"duration_min"`
	PosterURL   string  `json:"poster_url"`
}

// Cart is the single mutable source of truth for what one session intends to
// buy. It models exactly one in-progress booking: at most one showtime/movie
// pair, a seat selection, and theater-wide concession lines. All mutations are
// atomic relative to each other.
//
// Food lines deliberately survive a showtime change: concessions are bought
// once per theater visit, not per screening.
type Cart struct {
	mu            sync.Mutex
	selectedSeats []string
	foodOrder     []string             // line ids in insertion order, for stable display
	foodItems     map[string]*FoodLine // keyed by line id
	showtime      *ShowtimeInfo
	movie         *MovieInfo
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{
		foodItems: make(map[string]*FoodLine),
	}
}

// SetSelectedSeats replaces the seat selection wholesale. Duplicates are
// dropped keeping first occurrence; order is preserved for stable price-line
// enumeration. No booked-seat validation happens here - that invariant is
// enforced upstream where seats are toggled.
func (c *Cart) SetSelectedSeats(seats []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := make(map[string]struct{}, len(seats))
	next := make([]string, 0, len(seats))
	for _, id := range seats {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		next = append(next, id)
	}
	c.selectedSeats = next
}

// SelectedSeats returns a copy of the current selection in insertion order.
func (c *Cart) SelectedSeats() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	seats := make([]string, len(c.selectedSeats))
	copy(seats, c.selectedSeats)
	return seats
}

// AddFoodItem adds one unit of a concession item. An existing line with the
// same id gets its quantity incremented; the stored name and unit price are
// kept from the first add.
func (c *Cart) AddFoodItem(id, name string, unitPrice decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if line, ok := c.foodItems[id]; ok {
		line.Quantity++
		return
	}

	c.foodItems[id] = &FoodLine{
		ID:        id,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	}
	c.foodOrder = append(c.foodOrder, id)
}

// RemoveFoodItem deletes the line entirely regardless of current quantity.
func (c *Cart) RemoveFoodItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeFoodLocked(id)
}

// UpdateFoodItemQuantity sets a line's quantity to exactly the given value.
// A quantity of zero or less removes the line entirely: a line never persists
// with quantity 0. Unknown ids are ignored.
func (c *Cart) UpdateFoodItemQuantity(id string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line, ok := c.foodItems[id]
	if !ok {
		return
	}
	if quantity <= 0 {
		c.removeFoodLocked(id)
		return
	}
	line.Quantity = quantity
}

func (c *Cart) removeFoodLocked(id string) {
	if _, ok := c.foodItems[id]; !ok {
		return
	}
	delete(c.foodItems, id)
	for i, lineID := range c.foodOrder {
		if lineID == id {
			c.foodOrder = append(c.foodOrder[:i], c.foodOrder[i+1:]...)
			break
		}
	}
}

// SetShowtime replaces the single active showtime. No history of prior
// showtimes is kept.
func (c *Cart) SetShowtime(st *ShowtimeInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if st == nil {
		c.showtime = nil
		return
	}
	cp := *st
	c.showtime = &cp
}

// SetMovie replaces the single active movie descriptor.
func (c *Cart) SetMovie(m *MovieInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if m == nil {
		c.movie = nil
		return
	}
	cp := *m
	c.movie = &cp
}

// Clear resets seats, food lines, showtime, and movie in one step. Partial
// clears are not a valid state, so everything goes under a single lock hold.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selectedSeats = nil
	c.foodOrder = nil
	c.foodItems = make(map[string]*FoodLine)
	c.showtime = nil
	c.movie = nil
}

// Snapshot is an immutable copy of cart state handed to pricing and checkout.
type Snapshot struct {
	SelectedSeats []string
	FoodLines     []FoodLine
	Showtime      *ShowtimeInfo
	Movie         *MovieInfo
}

// Snapshot returns a deep copy of the current state. Food lines come back in
// insertion order.
func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		SelectedSeats: make([]string, len(c.selectedSeats)),
		FoodLines:     make([]FoodLine, 0, len(c.foodOrder)),
	}
	copy(snap.SelectedSeats, c.selectedSeats)

	for _, id := range c.foodOrder {
		if line, ok := c.foodItems[id]; ok {
			snap.FoodLines = append(snap.FoodLines, *line)
		}
	}

	if c.showtime != nil {
		cp := *c.showtime
		snap.Showtime = &cp
	}
	if c.movie != nil {
		cp := *c.movie
		snap.Movie = &cp
	}

	return snap
}

// IsEmpty reports whether the cart holds nothing at all.
func (s Snapshot) IsEmpty() bool {
	return len(s.SelectedSeats) == 0 && len(s.FoodLines) == 0 && s.Showtime == nil && s.Movie == nil
}
