package concessions

import "github.com/shopspring/decimal"

type CreateFoodItemRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=255"`
	Description string          `json:"description" validate:"max=1000"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"required"`
	Category    string          `json:"category" validate:"required,min=1,max=100"`
}

type SetAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

type MenuQuery struct {
	Category string `form:"category"`
}
