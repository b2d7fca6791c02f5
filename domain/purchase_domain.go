package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreatePurchase = "purchase created successfully"
	MessageSuccessGetPurchase    = "purchase retrieved successfully"
	MessageSuccessGetPurchases   = "purchases retrieved successfully"
	MessageSuccessUpdatePurchase = "purchase updated successfully"
	MessageSuccessDeletePurchase = "purchase deleted successfully"

	MessageFailedCreatePurchase = "failed to create purchase"
	MessageFailedGetPurchase    = "failed to retrieve purchase"
	MessageFailedGetPurchases   = "failed to retrieve purchases"
	MessageFailedUpdatePurchase = "failed to update purchase"
	MessageFailedDeletePurchase = "failed to delete purchase"

	ErrPurchaseNotFound   = errors.New("purchase not found")
	ErrNoPurchasesForCart = errors.New("no purchases found for the specified cart")
	ErrInvalidInputDate   = errors.New("invalid input date, expected RFC 3339")
)

type (
	CreatePurchaseRequest struct {
		ProductID uint    `json:"product_id" validate:"required"`
		CartID    uint    `json:"cart_id" validate:"required"`
		Quantity  int     `json:"quantity" validate:"required,min=1"`
		Price     float64 `json:"price" validate:"required,gt=0"`
		OnSale    bool    `json:"on_sale"`
		Purchased *bool   `json:"purchased"`
		InputDate string  `json:"input_date" validate:"required"`
	}

	// Pointer fields so an absent field and an explicit zero value are
	// distinguishable; absent fields are left untouched.
	UpdatePurchaseRequest struct {
		Quantity  *int     `json:"quantity" validate:"omitempty,min=1"`
		Price     *float64 `json:"price" validate:"omitempty,gt=0"`
		OnSale    *bool    `json:"on_sale"`
		Purchased *bool    `json:"purchased"`
		InputDate *string  `json:"input_date"`
	}

	PurchaseResponse struct {
		ID        uint      `json:"id"`
		ProductID uint      `json:"product_id"`
		CartID    uint      `json:"cart_id"`
		Quantity  int       `json:"quantity"`
		Price     float64   `json:"price"`
		OnSale    bool      `json:"on_sale"`
		Purchased bool      `json:"purchased"`
		InputDate time.Time `json:"input_date"`
	}
)
