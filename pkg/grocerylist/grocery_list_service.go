package grocerylist

import (
	"context"
	"errors"

	"grocery-tracker/domain"
	"grocery-tracker/entities"

	"gorm.io/gorm"
)

type (
	GroceryListService interface {
		CreateGroceryList(ctx context.Context, req domain.CreateGroceryListRequest) (domain.GroceryListResponse, error)
		GetGroceryListsByUserID(ctx context.Context, userID string) ([]domain.GroceryListResponse, error)
		UpdateGroceryList(ctx context.Context, id uint, req domain.UpdateGroceryListRequest) (domain.GroceryListResponse, error)
		DeleteGroceryList(ctx context.Context, id uint) (*domain.GroceryListResponse, error)
		GetGroceryListItems(ctx context.Context, listID uint) ([]domain.GroceryListItemResponse, error)
		AddGroceryListItem(ctx context.Context, listID uint, req domain.AddGroceryListItemRequest) (domain.GroceryListItemResponse, error)
	}

	groceryListService struct {
		groceryListRepository GroceryListRepository
	}
)

func NewGroceryListService(groceryListRepository GroceryListRepository) GroceryListService {
	return &groceryListService{groceryListRepository: groceryListRepository}
}

func (s *groceryListService) CreateGroceryList(ctx context.Context, req domain.CreateGroceryListRequest) (domain.GroceryListResponse, error) {
	list := &entities.GroceryList{
		Name:   req.Name,
		UserID: req.UserID,
	}

	if err := s.groceryListRepository.CreateGroceryList(ctx, list); err != nil {
		return domain.GroceryListResponse{}, err
	}

	return toGroceryListResponse(list), nil
}

func (s *groceryListService) GetGroceryListsByUserID(ctx context.Context, userID string) ([]domain.GroceryListResponse, error) {
	lists, err := s.groceryListRepository.GetGroceryListsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.GroceryListResponse, 0, len(lists))
	for _, list := range lists {
		response = append(response, toGroceryListResponse(list))
	}
	return response, nil
}

func (s *groceryListService) UpdateGroceryList(ctx context.Context, id uint, req domain.UpdateGroceryListRequest) (domain.GroceryListResponse, error) {
	list, err := s.groceryListRepository.GetGroceryListByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroceryListResponse{}, domain.ErrGroceryListNotFound
		}
		return domain.GroceryListResponse{}, err
	}

	list.Name = req.Name
	if err := s.groceryListRepository.UpdateGroceryList(ctx, list); err != nil {
		return domain.GroceryListResponse{}, err
	}

	return toGroceryListResponse(list), nil
}

// DeleteGroceryList returns (nil, nil) when the list is already absent; a
// missing id is a no-op rather than an error. Items are left in place.
func (s *groceryListService) DeleteGroceryList(ctx context.Context, id uint) (*domain.GroceryListResponse, error) {
	list, err := s.groceryListRepository.GetGroceryListByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := s.groceryListRepository.DeleteGroceryList(ctx, id); err != nil {
		return nil, err
	}

	response := toGroceryListResponse(list)
	return &response, nil
}

func (s *groceryListService) GetGroceryListItems(ctx context.Context, listID uint) ([]domain.GroceryListItemResponse, error) {
	items, err := s.groceryListRepository.GetGroceryListItems(ctx, listID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.GroceryListItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toGroceryListItemResponse(item))
	}
	return response, nil
}

func (s *groceryListService) AddGroceryListItem(ctx context.Context, listID uint, req domain.AddGroceryListItemRequest) (domain.GroceryListItemResponse, error) {
	list, err := s.groceryListRepository.GetGroceryListByID(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroceryListItemResponse{}, domain.ErrGroceryListNotFound
		}
		return domain.GroceryListItemResponse{}, err
	}

	item := &entities.GroceryListItem{
		GroceryListID: list.ID,
		ProductID:     req.ProductID,
		Quantity:      1.0,
		UnitQuantity:  1.0,
		UnitPrice:     req.UnitPrice,
		Total:         req.Total,
		Notes:         req.Notes,
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.UnitQuantity != nil {
		item.UnitQuantity = *req.UnitQuantity
	}

	if err := s.groceryListRepository.AddGroceryListItem(ctx, item); err != nil {
		return domain.GroceryListItemResponse{}, err
	}

	return toGroceryListItemResponse(item), nil
}

func toGroceryListResponse(list *entities.GroceryList) domain.GroceryListResponse {
	return domain.GroceryListResponse{
		ID:        list.ID,
		Name:      list.Name,
		UserID:    list.UserID,
		CreatedAt: list.CreatedAt,
	}
}

func toGroceryListItemResponse(item *entities.GroceryListItem) domain.GroceryListItemResponse {
	return domain.GroceryListItemResponse{
		ID:            item.ID,
		GroceryListID: item.GroceryListID,
		ProductID:     item.ProductID,
		Quantity:      item.Quantity,
		UnitQuantity:  item.UnitQuantity,
		UnitPrice:     item.UnitPrice,
		Total:         item.Total,
		Notes:         item.Notes,
	}
}
