package entities

import (
	"time"
)

type GroceryList struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	UserID    string    `gorm:"size:100;not null" json:"user_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	User  *User              `gorm:"foreignKey:UserID"`
	Items []*GroceryListItem `gorm:"foreignKey:GroceryListID"`
}

// Deleting a list does not remove its items; orphans are tolerated the same
// way the store schema tolerates them (no ON DELETE behavior declared).
type GroceryListItem struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	GroceryListID uint     `gorm:"not null" json:"grocery_list_id"`
	ProductID     uint     `gorm:"not null" json:"product_id"`
	Quantity      float64  `gorm:"default:1" json:"quantity"`
	UnitQuantity  float64  `gorm:"default:1" json:"unit_quantity"`
	UnitPrice     *float64 `json:"unit_price,omitempty"`
	Total         *float64 `json:"total,omitempty"`
	Notes         *string  `gorm:"size:255" json:"notes,omitempty"`

	GroceryList *GroceryList `gorm:"foreignKey:GroceryListID"`
	Product     *Product     `gorm:"foreignKey:ProductID"`
}
