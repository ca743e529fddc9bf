package concessions

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

	CreateFoodItem(ctx context.Context, req CreateFoodItemRequest) (*FoodItem, error)
	GetMenu(ctx context.Context, category string) ([]FoodItem, error)
	SetAvailability(ctx context.Context, id string, available bool) (*FoodItem, error)

	// Cart collaborator
	FoodLine(ctx context.Context, foodID string) (*cart.FoodLine, error)
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

func (s *service) CreateFoodItem(ctx context.Context, req CreateFoodItemRequest) (*FoodItem, error) {
	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("unit price cannot be negative")
	}

	item := &FoodItem{
		Name:        req.Name,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
		Category:    req.Category,
		Available:   true,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.invalidateMenu(ctx)
	return item, nil
}

func (s *service) GetMenu(ctx context.Context, category string) ([]FoodItem, error) {
	if s.cacheService == nil {
		return s.repo.ListAvailable(ctx, category)
	}

	cacheKey := constants.BuildFoodMenuKey(category)
	var items []FoodItem
	err := s.cacheService.GetOrSet(ctx, cacheKey, s.config.Redis.CatalogTTL, func() (interface{}, error) {
		return s.repo.ListAvailable(ctx, category)
	}, &items)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}
	return items, nil
}

func (s *service) SetAvailability(ctx context.Context, id string, available bool) (*FoodItem, error) {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid food item ID: %w", err)
	}

	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("food item not found")
		}
		return nil, fmt.Errorf("failed to get food item: %w", err)
	}

	item.Available = available
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.invalidateMenu(ctx)
	return item, nil
}

func (s *service) invalidateMenu(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeletePattern(ctx, constants.FoodMenuPattern()); err != nil {
		logger.GetDefault().Debug("failed to invalidate food menu cache", "error", err)
	}
}

// FoodLine resolves one menu item into the cart's line shape. Unavailable
// items resolve like unknown ids so a cart can never pick up a delisted
// product.
func (s *service) FoodLine(ctx context.Context, foodID string) (*cart.FoodLine, error) {
	itemID, err := uuid.Parse(foodID)
	if err != nil {
		return nil, fmt.Errorf("invalid food item ID: %w", err)
	}

	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrUnknownItem
		}
		return nil, fmt.Errorf("failed to get food item: %w", err)
	}
	if !item.Available {
		return nil, cart.ErrUnknownItem
	}

	return &cart.FoodLine{
		ID:        item.ID.String(),
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
		Quantity:  1,
	}, nil
}
