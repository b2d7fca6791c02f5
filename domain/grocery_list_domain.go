package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateGroceryList = "grocery list created successfully"
	MessageSuccessGetGroceryLists   = "grocery lists retrieved successfully"
	MessageSuccessUpdateGroceryList = "grocery list updated successfully"
	MessageSuccessDeleteGroceryList = "grocery list deleted successfully"
	MessageGroceryListAlreadyAbsent = "grocery list not found, nothing deleted"
	MessageSuccessGetGroceryItems   = "grocery list items retrieved successfully"
	MessageSuccessAddGroceryItem    = "grocery list item added successfully"

	MessageFailedCreateGroceryList = "failed to create grocery list"
	MessageFailedGetGroceryLists   = "failed to retrieve grocery lists"
	MessageFailedUpdateGroceryList = "failed to update grocery list"
	MessageFailedDeleteGroceryList = "failed to delete grocery list"
	MessageFailedGetGroceryItems   = "failed to retrieve grocery list items"
	MessageFailedAddGroceryItem    = "failed to add grocery list item"

	ErrGroceryListNotFound = errors.New("grocery list not found")
)

type (
	CreateGroceryListRequest struct {
		Name   string `json:"name" validate:"required"`
		UserID string `json:"user_id" validate:"required"`
	}

	UpdateGroceryListRequest struct {
		Name string `json:"name" validate:"required"`
	}

	GroceryListResponse struct {
		ID        uint      `json:"id"`
		Name      string    `json:"name"`
		UserID    string    `json:"user_id"`
		CreatedAt time.Time `json:"created_at"`
	}

	AddGroceryListItemRequest struct {
		ProductID    uint     `json:"product_id" validate:"required"`
		Quantity     *float64 `json:"quantity" validate:"omitempty,gt=0"`
		UnitQuantity *float64 `json:"unit_quantity" validate:"omitempty,gt=0"`
		UnitPrice    *float64 `json:"unit_price" validate:"omitempty,min=0"`
		Total        *float64 `json:"total" validate:"omitempty,min=0"`
		Notes        *string  `json:"notes" validate:"omitempty,max=255"`
	}

	GroceryListItemResponse struct {
		ID            uint     `json:"id"`
		GroceryListID uint     `json:"grocery_list_id"`
		ProductID     uint     `json:"product_id"`
		Quantity      float64  `json:"quantity"`
		UnitQuantity  float64  `json:"unit_quantity"`
		UnitPrice     *float64 `json:"unit_price,omitempty"`
		Total         *float64 `json:"total,omitempty"`
		Notes         *string  `json:"notes,omitempty"`
	}
)
