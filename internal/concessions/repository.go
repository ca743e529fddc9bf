package concessions

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, item *FoodItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*FoodItem, error)
	ListAvailable(ctx context.Context, category string) ([]FoodItem, error)
	Update(ctx context.Context, item *FoodItem) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, item *FoodItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create food item: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*FoodItem, error) {
	var item FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) ListAvailable(ctx context.Context, category string) ([]FoodItem, error) {
	var items []FoodItem
	query := r.db.WithContext(ctx).Where("available = ?", true).Order("category, name")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list food items: %w", err)
	}
	return items, nil
}

func (r *repository) Update(ctx context.Context, item *FoodItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return fmt.Errorf("failed to update food item: %w", err)
	}
	return nil
}
