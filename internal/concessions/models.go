package concessions

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FoodItem is one menu entry. The price recorded here is the menu price;
// carts capture it at add time so a later menu edit does not reprice lines
// already in a cart.
type FoodItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"unit_price"`
	Category    string          `gorm:"index" json:"category"`
	Available   bool            `gorm:"default:true" json:"available"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName sets the table name for FoodItem
func (FoodItem) TableName() string {
	return "food_items"
}
