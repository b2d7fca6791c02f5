package entities

type PackagingOption struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	PackagingType string `gorm:"size:50;not null;unique" json:"type"`
}

type UnitOfMeasurement struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UnitName string `gorm:"size:50;not null;unique" json:"name"`
}
