package purchase

import (
	"context"

	"grocery-tracker/entities"

	"gorm.io/gorm"
)

type (
	PurchaseRepository interface {
		CreatePurchase(ctx context.Context, purchase *entities.Purchase) error
		GetPurchaseByID(ctx context.Context, id uint) (*entities.Purchase, error)
		GetPurchases(ctx context.Context, skip, limit int) ([]*entities.Purchase, error)
		GetPurchasesByCartID(ctx context.Context, cartID uint) ([]*entities.Purchase, error)
		GetPurchasesByProductID(ctx context.Context, productID uint) ([]*entities.Purchase, error)
		UpdatePurchase(ctx context.Context, purchase *entities.Purchase) error
		DeletePurchase(ctx context.Context, id uint) error
	}

	purchaseRepository struct {
		db *gorm.DB
	}
)

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) CreatePurchase(ctx context.Context, purchase *entities.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

func (r *purchaseRepository) GetPurchaseByID(ctx context.Context, id uint) (*entities.Purchase, error) {
	var purchase entities.Purchase
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&purchase).Error; err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) GetPurchases(ctx context.Context, skip, limit int) ([]*entities.Purchase, error) {
	var purchases []*entities.Purchase
	if err := r.db.WithContext(ctx).
		Order("id asc").
		Offset(skip).
		Limit(limit).
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *purchaseRepository) GetPurchasesByCartID(ctx context.Context, cartID uint) ([]*entities.Purchase, error) {
	var purchases []*entities.Purchase
	if err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("id asc").
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *purchaseRepository) GetPurchasesByProductID(ctx context.Context, productID uint) ([]*entities.Purchase, error) {
	var purchases []*entities.Purchase
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id asc").
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *purchaseRepository) UpdatePurchase(ctx context.Context, purchase *entities.Purchase) error {
	return r.db.WithContext(ctx).Save(purchase).Error
}

func (r *purchaseRepository) DeletePurchase(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Purchase{}).Error
}
