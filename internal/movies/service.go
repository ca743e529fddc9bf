package movies

import (
	"context"
	"errors"
	"fmt"

	"cinepass/internal/cart"
	"cinepass/internal/shared/config"
	"cinepass/internal/shared/constants"
	"cinepass/pkg/cache"
	"cinepass/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	SetCacheService(cacheService cache.Service)

	CreateMovie(ctx context.Context, req CreateMovieRequest) (*Movie, error)
	GetMovie(ctx context.Context, id string) (*Movie, error)
	ListMovies(ctx context.Context, genre, search string) ([]Movie, error)
	DeleteMovie(ctx context.Context, id string) error

	// Cart collaborator
	MovieInfo(ctx context.Context, movieID string) (*cart.MovieInfo, error)
}

type service struct {
	repo         Repository
	config       *config.Config
	cacheService cache.Service
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &service{repo: repo, config: cfg}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) CreateMovie(ctx context.Context, req CreateMovieRequest) (*Movie, error) {
	movie := &Movie{
		Title:       req.Title,
		Description: req.Description,
		Genre:       req.Genre,
		Rating:      req.Rating,
		DurationMin: req.DurationMin,
		PosterURL:   req.PosterURL,
		ReleaseDate: req.ReleaseDate,
	}

	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)
	return movie, nil
}

func (s *service) GetMovie(ctx context.Context, id string) (*Movie, error) {
	movieID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID: %w", err)
	}

	if s.cacheService == nil {
		return s.getFromDB(ctx, movieID)
	}

	cacheKey := constants.BuildMovieDetailKey(id)
	var movie Movie
	err = s.cacheService.GetOrSet(ctx, cacheKey, s.config.Redis.CatalogTTL, func() (interface{}, error) {
		return s.getFromDB(ctx, movieID)
	}, &movie)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (s *service) getFromDB(ctx context.Context, movieID uuid.UUID) (*Movie, error) {
	movie, err := s.repo.GetByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("movie not found")
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	return movie, nil
}

func (s *service) ListMovies(ctx context.Context, genre, search string) ([]Movie, error) {
	if s.cacheService == nil {
		return s.repo.List(ctx, genre, search)
	}

	cacheKey := constants.BuildMovieListKey(genre, search)
	var movies []Movie
	err := s.cacheService.GetOrSet(ctx, cacheKey, s.config.Redis.CatalogTTL, func() (interface{}, error) {
		return s.repo.List(ctx, genre, search)
	}, &movies)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

func (s *service) DeleteMovie(ctx context.Context, id string) error {
	movieID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid movie ID: %w", err)
	}

	if err := s.repo.Delete(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("movie not found")
		}
		return err
	}

	if s.cacheService != nil {
		if err := s.cacheService.Delete(ctx, constants.BuildMovieDetailKey(id)); err != nil {
			logger.GetDefault().Debug("failed to invalidate movie cache", "movie_id", id, "error", err)
		}
	}
	s.invalidateListings(ctx)
	return nil
}

func (s *service) invalidateListings(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeletePattern(ctx, constants.MovieListPattern()); err != nil {
		logger.GetDefault().Debug("failed to invalidate movie listings cache", "error", err)
	}
}

// MovieInfo adapts a movie row into the cart's descriptor shape.
func (s *service) MovieInfo(ctx context.Context, movieID string) (*cart.MovieInfo, error) {
	movie, err := s.GetMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	return &cart.MovieInfo{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		Rating:      movie.Rating,
		DurationMin: movie.DurationMin,
		PosterURL:   movie.PosterURL,
	}, nil
}
