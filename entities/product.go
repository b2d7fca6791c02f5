package entities

// Product identity is the full six-column tuple; two rows may share a name
// as long as they differ in brand, size, or packaging.
type Product struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	Brand             string  `gorm:"size:100;not null;uniqueIndex:idx_product_identity" json:"brand"`
	Name              string  `gorm:"size:100;not null;uniqueIndex:idx_product_identity" json:"name"`
	Quantity          float64 `gorm:"not null;uniqueIndex:idx_product_identity" json:"quantity"`
	Packaging         string  `gorm:"size:50;not null;uniqueIndex:idx_product_identity" json:"packaging"`
	UnitQuantity      float64 `gorm:"not null;uniqueIndex:idx_product_identity" json:"unit_quantity"`
	UnitOfMeasurement string  `gorm:"size:50;not null;uniqueIndex:idx_product_identity" json:"unit_of_measurement"`
}
