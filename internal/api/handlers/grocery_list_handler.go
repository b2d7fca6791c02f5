package handlers

import (
	"errors"

	"grocery-tracker/domain"
	"grocery-tracker/internal/api/presenters"
	"grocery-tracker/pkg/grocerylist"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GroceryListHandler interface {
		CreateGroceryList(c *fiber.Ctx) error
		GetGroceryLists(c *fiber.Ctx) error
		UpdateGroceryList(c *fiber.Ctx) error
		DeleteGroceryList(c *fiber.Ctx) error
		GetGroceryListItems(c *fiber.Ctx) error
		AddGroceryListItem(c *fiber.Ctx) error
	}

	groceryListHandler struct {
		groceryListService grocerylist.GroceryListService
		validator          *validator.Validate
	}
)

func NewGroceryListHandler(groceryListService grocerylist.GroceryListService, validator *validator.Validate) GroceryListHandler {
	return &groceryListHandler{
		groceryListService: groceryListService,
		validator:          validator,
	}
}

func (h *groceryListHandler) CreateGroceryList(c *fiber.Ctx) error {
	req := new(domain.CreateGroceryListRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateGroceryList, err)
	}

	res, err := h.groceryListService.CreateGroceryList(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateGroceryList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateGroceryList)
}

func (h *groceryListHandler) GetGroceryLists(c *fiber.Ctx) error {
	userID := c.Params("userId")

	res, err := h.groceryListService.GetGroceryListsByUserID(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetGroceryLists, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGroceryLists)
}

func (h *groceryListHandler) UpdateGroceryList(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGroceryList, err)
	}

	req := new(domain.UpdateGroceryListRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGroceryList, err)
	}

	res, err := h.groceryListService.UpdateGroceryList(c.Context(), id, *req)
	if err != nil {
		if errors.Is(err, domain.ErrGroceryListNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateGroceryList, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGroceryList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateGroceryList)
}

func (h *groceryListHandler) DeleteGroceryList(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteGroceryList, err)
	}

	res, err := h.groceryListService.DeleteGroceryList(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteGroceryList, err)
	}

	// Absent list deletes as a no-op, not an error.
	if res == nil {
		return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageGroceryListAlreadyAbsent)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteGroceryList)
}

func (h *groceryListHandler) GetGroceryListItems(c *fiber.Ctx) error {
	listID, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetGroceryItems, err)
	}

	res, err := h.groceryListService.GetGroceryListItems(c.Context(), listID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetGroceryItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGroceryItems)
}

func (h *groceryListHandler) AddGroceryListItem(c *fiber.Ctx) error {
	listID, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGroceryItem, err)
	}

	req := new(domain.AddGroceryListItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGroceryItem, err)
	}

	res, err := h.groceryListService.AddGroceryListItem(c.Context(), listID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrGroceryListNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddGroceryItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGroceryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddGroceryItem)
}
