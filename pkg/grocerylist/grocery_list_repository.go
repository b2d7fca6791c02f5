package grocerylist

import (
	"context"

	"grocery-tracker/entities"

	"gorm.io/gorm"
)

type (
	GroceryListRepository interface {
		CreateGroceryList(ctx context.Context, list *entities.GroceryList) error
		GetGroceryListByID(ctx context.Context, id uint) (*entities.GroceryList, error)
		GetGroceryListsByUserID(ctx context.Context, userID string) ([]*entities.GroceryList, error)
		UpdateGroceryList(ctx context.Context, list *entities.GroceryList) error
		DeleteGroceryList(ctx context.Context, id uint) error
		GetGroceryListItems(ctx context.Context, listID uint) ([]*entities.GroceryListItem, error)
		AddGroceryListItem(ctx context.Context, item *entities.GroceryListItem) error
	}

	groceryListRepository struct {
		db *gorm.DB
	}
)

func NewGroceryListRepository(db *gorm.DB) GroceryListRepository {
	return &groceryListRepository{db: db}
}

func (r *groceryListRepository) CreateGroceryList(ctx context.Context, list *entities.GroceryList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *groceryListRepository) GetGroceryListByID(ctx context.Context, id uint) (*entities.GroceryList, error) {
	var list entities.GroceryList
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *groceryListRepository) GetGroceryListsByUserID(ctx context.Context, userID string) ([]*entities.GroceryList, error) {
	var lists []*entities.GroceryList
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *groceryListRepository) UpdateGroceryList(ctx context.Context, list *entities.GroceryList) error {
	return r.db.WithContext(ctx).Save(list).Error
}

func (r *groceryListRepository) DeleteGroceryList(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.GroceryList{}).Error
}

func (r *groceryListRepository) GetGroceryListItems(ctx context.Context, listID uint) ([]*entities.GroceryListItem, error) {
	var items []*entities.GroceryListItem
	if err := r.db.WithContext(ctx).
		Where("grocery_list_id = ?", listID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *groceryListRepository) AddGroceryListItem(ctx context.Context, item *entities.GroceryListItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}
