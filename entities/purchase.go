package entities

import (
	"time"
)

type Purchase struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null" json:"product_id"`
	CartID    uint      `gorm:"not null" json:"cart_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     float64   `gorm:"not null" json:"price"`
	OnSale    bool      `gorm:"default:false" json:"on_sale"`
	// no column default; a default:true tag would make gorm drop an
	// explicit false on insert, the service fills the field instead
	Purchased bool      `gorm:"not null" json:"purchased"`
	InputDate time.Time `gorm:"not null" json:"input_date"`

	Cart    *Cart    `gorm:"foreignKey:CartID"`
	Product *Product `gorm:"foreignKey:ProductID"`
}
