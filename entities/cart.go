package entities

import (
	"time"
)

type Cart struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"size:100;not null" json:"user_id"`
	Name         string    `gorm:"size:100" json:"name"`
	PurchaseDate time.Time `gorm:"type:date;not null;index" json:"purchase_date"`
	StoreID      uint      `gorm:"not null" json:"store_id"`
	Total        float64   `gorm:"not null;default:0" json:"total"`

	User      *User       `gorm:"foreignKey:UserID"`
	Store     *Store      `gorm:"foreignKey:StoreID"`
	Purchases []*Purchase `gorm:"foreignKey:CartID"`
}
