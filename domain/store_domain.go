package domain

import (
	"errors"
)

var (
	MessageSuccessCreateStore = "store created successfully"
	MessageSuccessGetStore    = "store retrieved successfully"
	MessageSuccessGetStores   = "stores retrieved successfully"

	MessageFailedCreateStore = "failed to create store"
	MessageFailedGetStore    = "failed to retrieve store"
	MessageFailedGetStores   = "failed to retrieve stores"

	ErrStoreNotFound = errors.New("store not found")
)

type (
	CreateStoreRequest struct {
		Name     string `json:"name" validate:"required"`
		Location string `json:"location" validate:"required"`
	}

	StoreResponse struct {
		ID       uint   `json:"id"`
		Name     string `json:"name"`
		Location string `json:"location"`
	}
)
