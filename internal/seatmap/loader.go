package seatmap

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrStaleLoad marks a booked-seats response that completed after its showtime
// was superseded. Callers drop it silently; it is not a user-visible failure.
var ErrStaleLoad = errors.New("stale booked-seats response")

// Source supplies the set of already-sold seat ids for a showtime. A transport
// failure must surface as an error, never as an empty set: an empty set means
// "zero bookings" and would wrongly allow double-booking on fetch failure.
type Source interface {
	BookedSeatIDs(ctx context.Context, showtimeID string) ([]string, error)
}

// Loader fetches booked-seat snapshots for one booking session's active
// showtime. It guards against out-of-order async completion: a response is
// applied only if the showtime id captured at request time still matches the
// active id when the response arrives.
type Loader struct {
	source Source

	mu       sync.Mutex
	activeID string
	snapshot Set
	loaded   bool
}

// NewLoader creates a loader backed by source.
func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

// SetActive switches the active showtime. Any snapshot from a previous
// showtime is dropped immediately; in-flight loads for it become stale.
func (l *Loader) SetActive(showtimeID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.activeID == showtimeID {
		return
	}
	l.activeID = showtimeID
	l.snapshot = nil
	l.loaded = false
}

// ActiveID returns the currently active showtime id.
func (l *Loader) ActiveID() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.activeID
}

// Load fetches the booked-seat set for showtimeID and applies it as the
// session snapshot. The showtime id acts as the staleness token: if the active
// showtime changed while the fetch was in flight, the result is discarded and
// ErrStaleLoad returned.
func (l *Loader) Load(ctx context.Context, showtimeID string) (Set, error) {
	ids, err := l.source.BookedSeatIDs(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booked seats: %w", err)
	}

	set := NewSet(ids...)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.activeID != showtimeID {
		return nil, ErrStaleLoad
	}

	l.snapshot = set
	l.loaded = true
	return set, nil
}

// Snapshot returns the applied booked-seat set for the active showtime and
// whether a load has completed for it.
func (l *Loader) Snapshot() (Set, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.loaded {
		return nil, false
	}
	return l.snapshot, true
}
