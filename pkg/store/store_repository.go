package store

import (
	"context"

	"grocery-tracker/entities"

	"gorm.io/gorm"
)

type (
	StoreRepository interface {
		CreateStore(ctx context.Context, store *entities.Store) error
		GetStoreByID(ctx context.Context, id uint) (*entities.Store, error)
		GetStores(ctx context.Context, skip, limit int) ([]*entities.Store, error)
	}

	storeRepository struct {
		db *gorm.DB
	}
)

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) CreateStore(ctx context.Context, store *entities.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *storeRepository) GetStoreByID(ctx context.Context, id uint) (*entities.Store, error) {
	var store entities.Store
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) GetStores(ctx context.Context, skip, limit int) ([]*entities.Store, error) {
	var stores []*entities.Store
	if err := r.db.WithContext(ctx).
		Order("id asc").
		Offset(skip).
		Limit(limit).
		Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}
