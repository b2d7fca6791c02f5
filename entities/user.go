package entities

import (
	"time"
)

// User ids are issued by the external identity provider, never generated
// here.
type User struct {
	ID        string    `gorm:"type:varchar(100);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	Carts        []*Cart        `gorm:"foreignKey:UserID"`
	GroceryLists []*GroceryList `gorm:"foreignKey:UserID"`
}
