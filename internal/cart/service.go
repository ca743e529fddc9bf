package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinepass/internal/pricing"
	"cinepass/internal/seatmap"
	"cinepass/pkg/logger"

	"github.com/shopspring/decimal"
)

// ErrUnknownItem is returned when a referenced showtime, movie, or food item
// does not exist.
var ErrUnknownItem = errors.New("unknown item")

// ShowtimeSource resolves showtime descriptors for the cart.
type ShowtimeSource interface {
	ShowtimeInfo(ctx context.Context, showtimeID string) (*ShowtimeInfo, error)
}

// MovieSource resolves movie descriptors for the cart.
type MovieSource interface {
	MovieInfo(ctx context.Context, movieID string) (*MovieInfo, error)
}

// FoodSource resolves menu items; the price it returns is captured into the
// cart at add time and never refreshed afterwards.
type FoodSource interface {
	FoodLine(ctx context.Context, foodID string) (*FoodLine, error)
}

// Service exposes every cart mutation reachable from the booking screens. All
// mutations return the refreshed view so clients re-render totals without a
// second round trip.
type Service interface {
	View(ctx context.Context, sessionID string) (*View, error)
	SetSelectedSeats(ctx context.Context, sessionID string, seats []string) (*View, error)
	AddFoodItem(ctx context.Context, sessionID, foodID string) (*View, error)
	UpdateFoodItemQuantity(ctx context.Context, sessionID, foodID string, quantity int) (*View, error)
	RemoveFoodItem(ctx context.Context, sessionID, foodID string) (*View, error)
	SetShowtime(ctx context.Context, sessionID, showtimeID string) (*View, error)
	SetMovie(ctx context.Context, sessionID, movieID string) (*View, error)
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	store     *Store
	showtimes ShowtimeSource
	movies    MovieSource
	food      FoodSource
}

// NewService wires the cart service to its catalog sources.
func NewService(store *Store, showtimes ShowtimeSource, movies MovieSource, food FoodSource) Service {
	return &service{
		store:     store,
		showtimes: showtimes,
		movies:    movies,
		food:      food,
	}
}

func (s *service) View(ctx context.Context, sessionID string) (*View, error) {
	sess := s.store.Get(sessionID)
	return buildView(sess.Cart.Snapshot()), nil
}

func (s *service) SetSelectedSeats(ctx context.Context, sessionID string, seats []string) (*View, error) {
	sess := s.store.Get(sessionID)
	sess.Cart.SetSelectedSeats(seats)

	snap := sess.Cart.Snapshot()
	if snap.Showtime != nil {
		logger.GetDefault().LogSeatsSelected(ctx, sessionID, snap.Showtime.ID, len(snap.SelectedSeats))
	}
	return buildView(snap), nil
}

func (s *service) AddFoodItem(ctx context.Context, sessionID, foodID string) (*View, error) {
	line, err := s.food.FoodLine(ctx, foodID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve food item %s: %w", foodID, err)
	}

	sess := s.store.Get(sessionID)
	sess.Cart.AddFoodItem(line.ID, line.Name, line.UnitPrice)
	return buildView(sess.Cart.Snapshot()), nil
}

func (s *service) UpdateFoodItemQuantity(ctx context.Context, sessionID, foodID string, quantity int) (*View, error) {
	sess := s.store.Get(sessionID)
	sess.Cart.UpdateFoodItemQuantity(foodID, quantity)
	return buildView(sess.Cart.Snapshot()), nil
}

func (s *service) RemoveFoodItem(ctx context.Context, sessionID, foodID string) (*View, error) {
	sess := s.store.Get(sessionID)
	sess.Cart.RemoveFoodItem(foodID)
	return buildView(sess.Cart.Snapshot()), nil
}

func (s *service) SetShowtime(ctx context.Context, sessionID, showtimeID string) (*View, error) {
	info, err := s.showtimes.ShowtimeInfo(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve showtime %s: %w", showtimeID, err)
	}

	sess := s.store.Get(sessionID)
	sess.Cart.SetShowtime(info)

	// Switching showtime supersedes any in-flight booked-seats load for the
	// previous one, then warms the snapshot for the new one in the
	// background. A load completing for a superseded showtime is dropped by
	// the loader's staleness token.
	sess.Loader.SetActive(showtimeID)
	go func(loader *seatmap.Loader, id string) {
		warmCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if _, err := loader.Load(warmCtx, id); err != nil {
			if errors.Is(err, seatmap.ErrStaleLoad) {
				logger.GetDefault().LogStaleLoadDropped(warmCtx, id, loader.ActiveID())
				return
			}
			logger.GetDefault().Debug("booked seats warm-up failed", "showtime_id", id, "error", err)
		}
	}(sess.Loader, showtimeID)

	return buildView(sess.Cart.Snapshot()), nil
}

func (s *service) SetMovie(ctx context.Context, sessionID, movieID string) (*View, error) {
	info, err := s.movies.MovieInfo(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve movie %s: %w", movieID, err)
	}

	sess := s.store.Get(sessionID)
	sess.Cart.SetMovie(info)
	return buildView(sess.Cart.Snapshot()), nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	sess := s.store.Get(sessionID)
	sess.Cart.Clear()
	return nil
}

// PricingLines converts a snapshot's food lines into pricing engine input.
func PricingLines(snap Snapshot) []pricing.Line {
	lines := make([]pricing.Line, 0, len(snap.FoodLines))
	for _, l := range snap.FoodLines {
		lines = append(lines, pricing.Line{
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}
	return lines
}

// Breakdown derives the money view of a snapshot. A cart with no showtime
// prices its seats at zero; seats cannot actually check out in that state.
func Breakdown(snap Snapshot) pricing.Breakdown {
	perSeat := decimal.Zero
	if snap.Showtime != nil {
		perSeat = snap.Showtime.Price
	}
	return pricing.Compute(len(snap.SelectedSeats), perSeat, PricingLines(snap))
}
