package seatmap_test

import (
	"context"
	"errors"
	"testing"

	"cinepass/internal/seatmap"

	"github.com/stretchr/testify/assert"
)

// fakeSource returns canned booked sets per showtime id and can be told to
// fail.
type fakeSource struct {
	booked map[string][]string
	err    error
	calls  int
}

func (f *fakeSource) BookedSeatIDs(ctx context.Context, showtimeID string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.booked[showtimeID], nil
}

func TestLoader_LoadAppliesForActiveShowtime(t *testing.T) {
	source := &fakeSource{booked: map[string][]string{
		"st-1": {"A1", "B2"},
	}}
	loader := seatmap.NewLoader(source)
	loader.SetActive("st-1")

	set, err := loader.Load(context.Background(), "st-1")

	assert.NoError(t, err)
	assert.True(t, set.Has("A1"))
	assert.True(t, set.Has("B2"))

	snap, ok := loader.Snapshot()
	assert.True(t, ok)
	assert.True(t, snap.Has("A1"))
}

func TestLoader_StaleResponseDropped(t *testing.T) {
	source := &fakeSource{booked: map[string][]string{
		"st-1": {"A1"},
		"st-2": {"C3"},
	}}
	loader := seatmap.NewLoader(source)
	loader.SetActive("st-1")

	// The session switches showtime while st-1's fetch is conceptually in
	// flight; applying st-1's result afterwards must fail as stale.
	loader.SetActive("st-2")

	set, err := loader.Load(context.Background(), "st-1")

	assert.ErrorIs(t, err, seatmap.ErrStaleLoad)
	assert.Nil(t, set)

	// The stale result never became the snapshot
	_, ok := loader.Snapshot()
	assert.False(t, ok)

	// The active showtime's own load still applies normally
	set, err = loader.Load(context.Background(), "st-2")
	assert.NoError(t, err)
	assert.True(t, set.Has("C3"))
}

func TestLoader_SetActiveClearsSnapshot(t *testing.T) {
	source := &fakeSource{booked: map[string][]string{
		"st-1": {"A1"},
	}}
	loader := seatmap.NewLoader(source)
	loader.SetActive("st-1")

	_, err := loader.Load(context.Background(), "st-1")
	assert.NoError(t, err)

	loader.SetActive("st-2")

	_, ok := loader.Snapshot()
	assert.False(t, ok)
	assert.Equal(t, "st-2", loader.ActiveID())
}

func TestLoader_SetActiveSameIDKeepsSnapshot(t *testing.T) {
	source := &fakeSource{booked: map[string][]string{
		"st-1": {"A1"},
	}}
	loader := seatmap.NewLoader(source)
	loader.SetActive("st-1")

	_, err := loader.Load(context.Background(), "st-1")
	assert.NoError(t, err)

	// Re-selecting the same showtime is a no-op
	loader.SetActive("st-1")

	snap, ok := loader.Snapshot()
	assert.True(t, ok)
	assert.True(t, snap.Has("A1"))
}

func TestLoader_FetchFailureIsAnError(t *testing.T) {
	source := &fakeSource{err: errors.New("connection refused")}
	loader := seatmap.NewLoader(source)
	loader.SetActive("st-1")

	set, err := loader.Load(context.Background(), "st-1")

	// A failed fetch must never masquerade as "zero bookings"
	assert.Error(t, err)
	assert.NotErrorIs(t, err, seatmap.ErrStaleLoad)
	assert.Nil(t, set)

	_, ok := loader.Snapshot()
	assert.False(t, ok)
}
