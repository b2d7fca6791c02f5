package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateCart = "cart created successfully"
	MessageSuccessGetCart    = "cart retrieved successfully"
	MessageSuccessGetCarts   = "carts retrieved successfully"
	MessageSuccessUpdateCart = "cart total updated successfully"

	MessageFailedCreateCart = "failed to create cart"
	MessageFailedGetCart    = "failed to retrieve cart"
	MessageFailedGetCarts   = "failed to retrieve carts"
	MessageFailedUpdateCart = "failed to update cart total"

	ErrCartNotFound        = errors.New("cart not found")
	ErrInvalidPurchaseDate = errors.New("invalid purchase date, expected YYYY-MM-DD")
)

type (
	CreateCartRequest struct {
		UserID       string  `json:"user_id" validate:"required"`
		Name         string  `json:"name" validate:"omitempty,max=100"`
		PurchaseDate string  `json:"purchase_date" validate:"required"`
		StoreID      uint    `json:"store_id" validate:"required"`
		Total        float64 `json:"total" validate:"omitempty,min=0"`
	}

	// Total is a pointer so a missing field fails required while an
	// explicit zero still passes.
	UpdateCartRequest struct {
		Total *float64 `json:"total" validate:"required,min=0"`
	}

	CartResponse struct {
		ID           uint      `json:"id"`
		UserID       string    `json:"user_id"`
		Name         string    `json:"name"`
		PurchaseDate time.Time `json:"purchase_date"`
		StoreID      uint      `json:"store_id"`
		Total        float64   `json:"total"`
	}
)
