package domain

import (
	"errors"
)

var (
	MessageSuccessCreatePackaging = "packaging option created successfully"
	MessageSuccessGetPackaging    = "packaging options retrieved successfully"

	MessageFailedCreatePackaging = "failed to create packaging option"
	MessageFailedGetPackaging    = "failed to retrieve packaging options"

	MessageSuccessCreateUnit = "unit of measurement created successfully"
	MessageSuccessGetUnits   = "units of measurement retrieved successfully"

	MessageFailedCreateUnit = "failed to create unit of measurement"
	MessageFailedGetUnits   = "failed to retrieve units of measurement"

	ErrPackagingOptionNotFound   = errors.New("packaging option not found")
	ErrUnitOfMeasurementNotFound = errors.New("unit of measurement not found")
)

type (
	CreatePackagingOptionRequest struct {
		PackagingType string `json:"type" validate:"required,max=50"`
	}

	PackagingOptionResponse struct {
		ID            uint   `json:"id"`
		PackagingType string `json:"type"`
	}

	CreateUnitOfMeasurementRequest struct {
		UnitName string `json:"name" validate:"required,max=50"`
	}

	UnitOfMeasurementResponse struct {
		ID       uint   `json:"id"`
		UnitName string `json:"name"`
	}
)
