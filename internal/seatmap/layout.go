package seatmap

import "fmt"

// Default hall grid dimensions, overridable per showtime.
const (
	DefaultRows    = 10
	DefaultColumns = 8
)

// RowLabel converts a 0-based row index to its letter label: A..Z, then
// spreadsheet-style double letters (AA, AB, ...) for halls deeper than 26 rows.
func RowLabel(index int) string {
	if index < 0 {
		return ""
	}
	label := ""
	n := index
	for {
		label = string(rune('A'+n%26)) + label
		n = n/26 - 1
		if n < 0 {
			break
		}
	}
	return label
}

// SeatID builds the canonical seat id for a 0-based row index and 1-based
// column number, e.g. row 2 column 5 -> "C5".
func SeatID(rowIndex, number int) string {
	return fmt.Sprintf("%s%d", RowLabel(rowIndex), number)
}

// ParseSeatID splits a seat id back into its 0-based row index and 1-based
// column number. Returns ok=false for anything that is not a row label
// followed by a positive number.
func ParseSeatID(id string) (rowIndex, number int, ok bool) {
	i := 0
	for i < len(id) && id[i] >= 'A' && id[i] <= 'Z' {
		i++
	}
	if i == 0 || i == len(id) {
		return 0, 0, false
	}

	rowIndex = 0
	for _, ch := range id[:i] {
		rowIndex = rowIndex*26 + int(ch-'A'+1)
	}
	rowIndex--

	for _, ch := range id[i:] {
		if ch < '0' || ch > '9' {
			return 0, 0, false
		}
		number = number*10 + int(ch-'0')
	}
	if number < 1 {
		return 0, 0, false
	}

	return rowIndex, number, true
}

// InGrid reports whether a seat id falls inside a rows x columns hall grid.
func InGrid(id string, rows, columns int) bool {
	rowIndex, number, ok := ParseSeatID(id)
	if !ok {
		return false
	}
	return rowIndex < rows && number <= columns
}

// AisleColumn returns the 1-based column carrying the structural aisle marker:
// the ceiling of half the column count. The marker is cosmetic only and never
// affects booking logic.
func AisleColumn(columns int) int {
	return (columns + 1) / 2
}

// GenerateLayout derives the full seat grid for a hall. It is pure: every
// seat's booked/selected flag is recomputed from the two supplied sets on each
// call. Exactly rows x columns seats are produced, rows labelled A, B, C...
// and numbers 1..columns within each row.
func GenerateLayout(rows, columns int, booked Set, selected Set) [][]Seat {
	if rows <= 0 || columns <= 0 {
		return nil
	}

	aisle := AisleColumn(columns)
	layout := make([][]Seat, 0, rows)

	for r := 0; r < rows; r++ {
		row := make([]Seat, 0, columns)
		for n := 1; n <= columns; n++ {
			id := SeatID(r, n)
			row = append(row, Seat{
				ID:         id,
				Row:        RowLabel(r),
				Number:     n,
				IsBooked:   booked.Has(id),
				IsSelected: selected.Has(id),
				IsAisle:    n == aisle,
			})
		}
		layout = append(layout, row)
	}

	return layout
}

// ToggleSeat flips seatID's membership in the current selection and returns
// the new selection. Booked seats are inert: toggling one returns the
// selection unchanged, no error. Appends preserve selection order so price
// lines render stably downstream. The input slice is never mutated.
func ToggleSeat(seatID string, booked Set, selection []string) []string {
	if booked.Has(seatID) {
		return selection
	}

	for i, id := range selection {
		if id == seatID {
			next := make([]string, 0, len(selection)-1)
			next = append(next, selection[:i]...)
			next = append(next, selection[i+1:]...)
			return next
		}
	}

	next := make([]string, 0, len(selection)+1)
	next = append(next, selection...)
	next = append(next, seatID)
	return next
}
