package seatmap

// Seat is one position in a hall grid. The flags are derived on every layout
// generation from the booked and selected sets; a Seat value is never the
// authoritative record of either.
type Seat struct {
	ID         string `json:"id"`
	Row        string `json:"row"`
	Number     int    `json:"number"`
	IsBooked   bool   `json:"is_booked"`
	IsSelected bool   `json:"is_selected"`
	IsAisle    bool   `json:"is_aisle"`
}

// Set is a membership set of seat ids.
type Set map[string]struct{}

// NewSet builds a Set from seat ids.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is a member.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the members in unspecified order.
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}
