package showtimes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinepass/internal/cart"
	"cinepass/internal/seatmap"
	"cinepass/internal/shared/config"
	"cinepass/internal/shared/constants"
	"cinepass/pkg/cache"
	"cinepass/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrSeatOutsideGrid is returned when a toggle references a seat id the hall
// grid does not contain.
var ErrSeatOutsideGrid = errors.New("seat is outside the hall grid")

type Service interface {
	SetCacheService(cacheService cache.Service)

	// Catalog
	CreateShowtime(ctx context.Context, req CreateShowtimeRequest) (*Showtime, error)
	GetShowtime(ctx context.Context, id string) (*Showtime, error)
	ListByMovie(ctx context.Context, movieID string, upcomingOnly bool) ([]Showtime, error)
	ListByTheater(ctx context.Context, theaterID string, upcomingOnly bool) ([]Showtime, error)
	ListTheaters(ctx context.Context) ([]Theater, error)
	CreateTheater(ctx context.Context, req CreateTheaterRequest) (*Theater, error)

	// Booked seats (feeds the seat-map loader)
	BookedSeatIDs(ctx context.Context, showtimeID string) ([]string, error)

	// Seat map for one booking session
	SeatMap(ctx context.Context, sess *cart.Session, showtimeID string) (*SeatMapResponse, error)
	ToggleSeat(ctx context.Context, sess *cart.Session, showtimeID, seatID string) ([]string, error)

	// Ticket persistence (checkout handoff)
	SellSeats(ctx context.Context, showtimeID string, seatNumbers []string, orderRef string) error

	// Cart collaborator
	ShowtimeInfo(ctx context.Context, showtimeID string) (*cart.ShowtimeInfo, error)
}

type service struct {
	repo         Repository
	config       *config.Config
	cacheService cache.Service
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &service{
		repo:   repo,
		config: cfg,
	}
}

// SetCacheService attaches the Redis cache layer. Without it every read goes
// straight to Postgres.
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

//  CATALOG

func (s *service) CreateShowtime(ctx context.Context, req CreateShowtimeRequest) (*Showtime, error) {
	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID: %w", err)
	}
	theaterID, err := uuid.Parse(req.TheaterID)
	if err != nil {
		return nil, fmt.Errorf("invalid theater ID: %w", err)
	}

	if _, err := s.repo.GetTheaterByID(ctx, theaterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("theater not found")
		}
		return nil, fmt.Errorf("failed to get theater: %w", err)
	}

	rows := req.Rows
	if rows <= 0 {
		rows = s.config.SeatLayout.DefaultRows
	}
	columns := req.Columns
	if columns <= 0 {
		columns = s.config.SeatLayout.DefaultColumns
	}

	showtime := &Showtime{
		MovieID:    movieID,
		TheaterID:  theaterID,
		HallNumber: req.HallNumber,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Is3D:       req.Is3D,
		Price:      req.Price,
		Rows:       rows,
		Columns:    columns,
	}

	if err := s.repo.Create(ctx, showtime); err != nil {
		return nil, fmt.Errorf("failed to create showtime: %w", err)
	}

	return showtime, nil
}

func (s *service) GetShowtime(ctx context.Context, id string) (*Showtime, error) {
	showtimeID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID: %w", err)
	}

	showtime, err := s.repo.GetByID(ctx, showtimeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("showtime not found")
		}
		return nil, fmt.Errorf("failed to get showtime: %w", err)
	}

	return showtime, nil
}

func (s *service) ListByMovie(ctx context.Context, movieID string, upcomingOnly bool) ([]Showtime, error) {
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID: %w", err)
	}

	return s.repo.ListByMovie(ctx, movieUUID, upcomingOnly)
}

func (s *service) ListByTheater(ctx context.Context, theaterID string, upcomingOnly bool) ([]Showtime, error) {
	theaterUUID, err := uuid.Parse(theaterID)
	if err != nil {
		return nil, fmt.Errorf("invalid theater ID: %w", err)
	}

	return s.repo.ListByTheater(ctx, theaterUUID, upcomingOnly)
}

func (s *service) ListTheaters(ctx context.Context) ([]Theater, error) {
	return s.repo.ListTheaters(ctx)
}

func (s *service) CreateTheater(ctx context.Context, req CreateTheaterRequest) (*Theater, error) {
	theater := &Theater{
		Name:      req.Name,
		City:      req.City,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	if err := s.repo.CreateTheater(ctx, theater); err != nil {
		return nil, fmt.Errorf("failed to create theater: %w", err)
	}

	return theater, nil
}

//  BOOKED SEATS

// BookedSeatIDs returns the sold seat ids for a showtime, cache-aside through
// Redis with a short TTL. A transport failure surfaces as an error and is
// never collapsed into an empty set: empty means "zero bookings", not
// "fetch failed".
func (s *service) BookedSeatIDs(ctx context.Context, showtimeID string) ([]string, error) {
	showtimeUUID, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID: %w", err)
	}

	if s.cacheService == nil {
		return s.repo.BookedSeatNumbers(ctx, showtimeUUID)
	}

	cacheKey := constants.BuildBookedSeatsKey(showtimeID)
	var seatIDs []string
	err = s.cacheService.GetOrSet(ctx, cacheKey, s.config.Redis.BookedSeatsTTL, func() (interface{}, error) {
		return s.repo.BookedSeatNumbers(ctx, showtimeUUID)
	}, &seatIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get booked seats: %w", err)
	}

	return seatIDs, nil
}

//  SEAT MAP

// SeatMap renders the full seat grid for one session: booked flags from sold
// tickets, selected flags from the session's cart. The session loader's
// snapshot is used when it already holds this showtime; otherwise the booked
// set is fetched directly.
func (s *service) SeatMap(ctx context.Context, sess *cart.Session, showtimeID string) (*SeatMapResponse, error) {
	showtime, err := s.GetShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	booked, err := s.bookedSetForSession(ctx, sess, showtimeID)
	if err != nil {
		return nil, err
	}

	selection := sess.Cart.SelectedSeats()
	rows := showtime.GridRows(s.config.SeatLayout.DefaultRows)
	columns := showtime.GridColumns(s.config.SeatLayout.DefaultColumns)

	layout := seatmap.GenerateLayout(rows, columns, booked, seatmap.NewSet(selection...))

	return &SeatMapResponse{
		ShowtimeID:    showtimeID,
		Rows:          rows,
		Columns:       columns,
		Layout:        layout,
		SelectedSeats: selection,
	}, nil
}

// ToggleSeat flips one seat in the session's selection and pushes the new
// selection into the cart - the cart is the single downstream consumer of
// "how many seats, which ones". Booked seats are inert; toggling one returns
// the selection unchanged.
func (s *service) ToggleSeat(ctx context.Context, sess *cart.Session, showtimeID, seatID string) ([]string, error) {
	showtime, err := s.GetShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	rows := showtime.GridRows(s.config.SeatLayout.DefaultRows)
	columns := showtime.GridColumns(s.config.SeatLayout.DefaultColumns)
	if !seatmap.InGrid(seatID, rows, columns) {
		return nil, ErrSeatOutsideGrid
	}

	booked, err := s.bookedSetForSession(ctx, sess, showtimeID)
	if err != nil {
		return nil, err
	}

	selection := sess.Cart.SelectedSeats()
	next := seatmap.ToggleSeat(seatID, booked, selection)
	sess.Cart.SetSelectedSeats(next)

	logger.GetDefault().LogSeatsSelected(ctx, sess.ID, showtimeID, len(next))
	return next, nil
}

// bookedSetForSession prefers the session loader's applied snapshot and falls
// back to a direct load, which also warms the loader when this showtime is
// the active one.
func (s *service) bookedSetForSession(ctx context.Context, sess *cart.Session, showtimeID string) (seatmap.Set, error) {
	if sess.Loader.ActiveID() == showtimeID {
		if snap, ok := sess.Loader.Snapshot(); ok {
			return snap, nil
		}
		set, err := sess.Loader.Load(ctx, showtimeID)
		if err != nil && !errors.Is(err, seatmap.ErrStaleLoad) {
			return nil, err
		}
		if err == nil {
			return set, nil
		}
		// Stale means the session moved on mid-request; fall through to a
		// direct fetch for the requested id.
	}

	ids, err := s.BookedSeatIDs(ctx, showtimeID)
	if err != nil {
		return nil, err
	}
	return seatmap.NewSet(ids...), nil
}

//  TICKETS

// SellSeats persists one ticket per seat for a confirmed order and drops the
// booked-seats cache entry so the next seat-map render sees them.
func (s *service) SellSeats(ctx context.Context, showtimeID string, seatNumbers []string, orderRef string) error {
	showtimeUUID, err := uuid.Parse(showtimeID)
	if err != nil {
		return fmt.Errorf("invalid showtime ID: %w", err)
	}

	now := time.Now()
	tickets := make([]Ticket, 0, len(seatNumbers))
	for _, seat := range seatNumbers {
		tickets = append(tickets, Ticket{
			ShowtimeID: showtimeUUID,
			SeatNumber: seat,
			OrderRef:   orderRef,
			SoldAt:     now,
		})
	}

	if err := s.repo.CreateTickets(ctx, tickets); err != nil {
		return fmt.Errorf("failed to sell seats: %w", err)
	}

	if s.cacheService != nil {
		if err := s.cacheService.Delete(ctx, constants.BuildBookedSeatsKey(showtimeID)); err != nil {
			logger.GetDefault().Debug("failed to invalidate booked seats cache", "showtime_id", showtimeID, "error", err)
		}
	}

	return nil
}

//  CART COLLABORATOR

// ShowtimeInfo adapts a showtime row into the cart's descriptor shape.
func (s *service) ShowtimeInfo(ctx context.Context, showtimeID string) (*cart.ShowtimeInfo, error) {
	showtime, err := s.GetShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	return &cart.ShowtimeInfo{
		ID:         showtime.ID.String(),
		Price:      showtime.Price,
		MovieID:    showtime.MovieID.String(),
		TheaterID:  showtime.TheaterID.String(),
		StartTime:  showtime.StartTime,
		EndTime:    showtime.EndTime,
		Is3D:       showtime.Is3D,
		HallNumber: showtime.HallNumber,
	}, nil
}
