package concessions

import "github.com/shopspring/decimal"

type FoodItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Category    string          `json:"category"`
	Available   bool            `json:"available"`
}

func toFoodItemResponse(item *FoodItem) FoodItemResponse {
	return FoodItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		UnitPrice:   item.UnitPrice,
		Category:    item.Category,
		Available:   item.Available,
	}
}

func toFoodItemResponses(items []FoodItem) []FoodItemResponse {
	out := make([]FoodItemResponse, 0, len(items))
	for i := range items {
		out = append(out, toFoodItemResponse(&items[i]))
	}
	return out
}
