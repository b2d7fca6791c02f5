package cart

import (
	"context"

	"grocery-tracker/entities"

	"gorm.io/gorm"
)

type (
	CartRepository interface {
		CreateCart(ctx context.Context, cart *entities.Cart) error
		GetCartByID(ctx context.Context, id uint) (*entities.Cart, error)
		GetCarts(ctx context.Context, skip, limit int) ([]*entities.Cart, error)
		GetAllCarts(ctx context.Context) ([]*entities.Cart, error)
		UpdateCart(ctx context.Context, cart *entities.Cart) error
	}

	cartRepository struct {
		db *gorm.DB
	}
)

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) CreateCart(ctx context.Context, cart *entities.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *cartRepository) GetCartByID(ctx context.Context, id uint) (*entities.Cart, error) {
	var cart entities.Cart
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetCarts(ctx context.Context, skip, limit int) ([]*entities.Cart, error) {
	var carts []*entities.Cart
	if err := r.db.WithContext(ctx).
		Order("id asc").
		Offset(skip).
		Limit(limit).
		Find(&carts).Error; err != nil {
		return nil, err
	}
	return carts, nil
}

func (r *cartRepository) GetAllCarts(ctx context.Context) ([]*entities.Cart, error) {
	var carts []*entities.Cart
	if err := r.db.WithContext(ctx).Order("id asc").Find(&carts).Error; err != nil {
		return nil, err
	}
	return carts, nil
}

func (r *cartRepository) UpdateCart(ctx context.Context, cart *entities.Cart) error {
	return r.db.WithContext(ctx).Save(cart).Error
}
