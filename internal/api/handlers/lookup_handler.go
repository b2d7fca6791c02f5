package handlers

import (
	"errors"

	"grocery-tracker/domain"
	"grocery-tracker/internal/api/presenters"
	"grocery-tracker/pkg/lookup"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	LookupHandler interface {
		CreatePackagingOption(c *fiber.Ctx) error
		GetPackagingOptions(c *fiber.Ctx) error
		GetPackagingOptionDetails(c *fiber.Ctx) error
		CreateUnitOfMeasurement(c *fiber.Ctx) error
		GetUnitsOfMeasurement(c *fiber.Ctx) error
		GetUnitOfMeasurementDetails(c *fiber.Ctx) error
	}

	lookupHandler struct {
		lookupService lookup.LookupService
		validator     *validator.Validate
	}
)

func NewLookupHandler(lookupService lookup.LookupService, validator *validator.Validate) LookupHandler {
	return &lookupHandler{
		lookupService: lookupService,
		validator:     validator,
	}
}

func (h *lookupHandler) CreatePackagingOption(c *fiber.Ctx) error {
	req := new(domain.CreatePackagingOptionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePackaging, err)
	}

	res, err := h.lookupService.CreatePackagingOption(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePackaging, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePackaging)
}

func (h *lookupHandler) GetPackagingOptions(c *fiber.Ctx) error {
	res, err := h.lookupService.GetPackagingOptions(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPackaging, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPackaging)
}

func (h *lookupHandler) GetPackagingOptionDetails(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPackaging, err)
	}

	res, err := h.lookupService.GetPackagingOptionByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPackagingOptionNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetPackaging, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPackaging, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPackaging)
}

func (h *lookupHandler) CreateUnitOfMeasurement(c *fiber.Ctx) error {
	req := new(domain.CreateUnitOfMeasurementRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateUnit, err)
	}

	res, err := h.lookupService.CreateUnitOfMeasurement(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateUnit, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateUnit)
}

func (h *lookupHandler) GetUnitsOfMeasurement(c *fiber.Ctx) error {
	res, err := h.lookupService.GetUnitsOfMeasurement(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUnits, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUnits)
}

func (h *lookupHandler) GetUnitOfMeasurementDetails(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUnits, err)
	}

	res, err := h.lookupService.GetUnitOfMeasurementByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUnitOfMeasurementNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetUnits, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUnits, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUnits)
}
