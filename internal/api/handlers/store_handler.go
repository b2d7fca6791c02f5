package handlers

import (
	"errors"

	"grocery-tracker/domain"
	"grocery-tracker/internal/api/presenters"
	"grocery-tracker/pkg/store"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	StoreHandler interface {
		CreateStore(c *fiber.Ctx) error
		GetStores(c *fiber.Ctx) error
		GetStoreDetails(c *fiber.Ctx) error
	}

	storeHandler struct {
		storeService store.StoreService
		validator    *validator.Validate
	}
)

func NewStoreHandler(storeService store.StoreService, validator *validator.Validate) StoreHandler {
	return &storeHandler{
		storeService: storeService,
		validator:    validator,
	}
}

func (h *storeHandler) CreateStore(c *fiber.Ctx) error {
	req := new(domain.CreateStoreRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateStore, err)
	}

	res, err := h.storeService.CreateStore(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateStore, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateStore)
}

func (h *storeHandler) GetStores(c *fiber.Ctx) error {
	skip, limit := parsePagination(c)

	res, err := h.storeService.GetStores(c.Context(), skip, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStores, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStores)
}

func (h *storeHandler) GetStoreDetails(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStore, err)
	}

	res, err := h.storeService.GetStoreByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetStore, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStore, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStore)
}
