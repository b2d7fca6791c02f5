package entities

type Store struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null;index" json:"name"`
	Location string `gorm:"size:255;not null" json:"location"`

	Carts []*Cart `gorm:"foreignKey:StoreID"`
}
