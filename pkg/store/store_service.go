package store

import (
	"context"
	"errors"

	"grocery-tracker/domain"
	"grocery-tracker/entities"

	"gorm.io/gorm"
)

type (
	StoreService interface {
		CreateStore(ctx context.Context, req domain.CreateStoreRequest) (domain.StoreResponse, error)
		GetStoreByID(ctx context.Context, id uint) (domain.StoreResponse, error)
		GetStores(ctx context.Context, skip, limit int) ([]domain.StoreResponse, error)
	}

	storeService struct {
		storeRepository StoreRepository
	}
)

func NewStoreService(storeRepository StoreRepository) StoreService {
	return &storeService{storeRepository: storeRepository}
}

func (s *storeService) CreateStore(ctx context.Context, req domain.CreateStoreRequest) (domain.StoreResponse, error) {
	store := &entities.Store{
		Name:     req.Name,
		Location: req.Location,
	}

	if err := s.storeRepository.CreateStore(ctx, store); err != nil {
		return domain.StoreResponse{}, err
	}

	return toStoreResponse(store), nil
}

func (s *storeService) GetStoreByID(ctx context.Context, id uint) (domain.StoreResponse, error) {
	store, err := s.storeRepository.GetStoreByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.StoreResponse{}, domain.ErrStoreNotFound
		}
		return domain.StoreResponse{}, err
	}
	return toStoreResponse(store), nil
}

func (s *storeService) GetStores(ctx context.Context, skip, limit int) ([]domain.StoreResponse, error) {
	stores, err := s.storeRepository.GetStores(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	response := make([]domain.StoreResponse, 0, len(stores))
	for _, store := range stores {
		response = append(response, toStoreResponse(store))
	}
	return response, nil
}

func toStoreResponse(store *entities.Store) domain.StoreResponse {
	return domain.StoreResponse{
		ID:       store.ID,
		Name:     store.Name,
		Location: store.Location,
	}
}
