package movies

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, movie *Movie) error
	GetByID(ctx context.Context, id uuid.UUID) (*Movie, error)
	List(ctx context.Context, genre, search string) ([]Movie, error)
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, movie *Movie) error {
	if err := r.db.WithContext(ctx).Create(movie).Error; err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Movie, error) {
	var movie Movie
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&movie).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *repository) List(ctx context.Context, genre, search string) ([]Movie, error) {
	var movies []Movie
	query := r.db.WithContext(ctx).Order("release_date DESC")
	if genre != "" {
		query = query.Where("genre = ?", genre)
	}
	if search != "" {
		query = query.Where("title ILIKE ?", "%"+search+"%")
	}
	if err := query.Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

func (r *repository) Update(ctx context.Context, movie *Movie) error {
	if err := r.db.WithContext(ctx).Save(movie).Error; err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Movie{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete movie: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
