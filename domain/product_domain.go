package domain

import (
	"errors"
)

var (
	MessageSuccessCreateProduct = "product created successfully"
	MessageSuccessGetProduct    = "product retrieved successfully"
	MessageSuccessGetProducts   = "products retrieved successfully"
	MessageSuccessSearchProduct = "matching products retrieved successfully"
	MessageSuccessQueryProduct  = "product query executed successfully"

	MessageFailedCreateProduct = "failed to create product"
	MessageFailedGetProduct    = "failed to retrieve product"
	MessageFailedGetProducts   = "failed to retrieve products"
	MessageFailedSearchProduct = "failed to search products"
	MessageFailedQueryProduct  = "failed to execute product query"

	ErrProductNotFound = errors.New("product not found")
	ErrNoProductsMatch = errors.New("no products match the search criteria")
	ErrEmptySearchTerm = errors.New("search term must not be empty")
)

type (
	CreateProductRequest struct {
		Brand             string  `json:"brand" validate:"required"`
		Name              string  `json:"name" validate:"required"`
		Quantity          float64 `json:"quantity" validate:"required,gt=0"`
		Packaging         string  `json:"packaging" validate:"required"`
		UnitQuantity      float64 `json:"unit_quantity" validate:"required,gt=0"`
		UnitOfMeasurement string  `json:"unit_of_measurement" validate:"required"`
	}

	// ProductQueryRequest is the closed set of filters accepted by the
	// query endpoint. Nil fields are not applied.
	ProductQueryRequest struct {
		Brand             *string `json:"brand" validate:"omitempty,min=1"`
		Name              *string `json:"name" validate:"omitempty,min=1"`
		Packaging         *string `json:"packaging" validate:"omitempty,min=1"`
		UnitOfMeasurement *string `json:"unit_of_measurement" validate:"omitempty,min=1"`
		Skip              int     `json:"skip" validate:"omitempty,min=0"`
		Limit             int     `json:"limit" validate:"omitempty,min=1"`
	}

	ProductResponse struct {
		ID                uint    `json:"id"`
		Brand             string  `json:"brand"`
		Name              string  `json:"name"`
		Quantity          float64 `json:"quantity"`
		Packaging         string  `json:"packaging"`
		UnitQuantity      float64 `json:"unit_quantity"`
		UnitOfMeasurement string  `json:"unit_of_measurement"`
	}
)
