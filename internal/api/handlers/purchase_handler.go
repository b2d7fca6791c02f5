package handlers

import (
	"errors"

	"grocery-tracker/domain"
	"grocery-tracker/internal/api/presenters"
	"grocery-tracker/pkg/purchase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PurchaseHandler interface {
		CreatePurchase(c *fiber.Ctx) error
		GetPurchases(c *fiber.Ctx) error
		GetPurchaseDetails(c *fiber.Ctx) error
		GetPurchasesByCart(c *fiber.Ctx) error
		GetPurchasesByProduct(c *fiber.Ctx) error
		UpdatePurchase(c *fiber.Ctx) error
		DeletePurchase(c *fiber.Ctx) error
	}

	purchaseHandler struct {
		purchaseService purchase.PurchaseService
		validator       *validator.Validate
	}
)

func NewPurchaseHandler(purchaseService purchase.PurchaseService, validator *validator.Validate) PurchaseHandler {
	return &purchaseHandler{
		purchaseService: purchaseService,
		validator:       validator,
	}
}

func (h *purchaseHandler) CreatePurchase(c *fiber.Ctx) error {
	req := new(domain.CreatePurchaseRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePurchase, err)
	}

	res, err := h.purchaseService.CreatePurchase(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePurchase, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePurchase)
}

func (h *purchaseHandler) GetPurchases(c *fiber.Ctx) error {
	skip, limit := parsePagination(c)

	res, err := h.purchaseService.GetPurchases(c.Context(), skip, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPurchases, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPurchases)
}

func (h *purchaseHandler) GetPurchaseDetails(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPurchase, err)
	}

	res, err := h.purchaseService.GetPurchaseByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPurchaseNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetPurchase, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPurchase, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPurchase)
}

func (h *purchaseHandler) GetPurchasesByCart(c *fiber.Ctx) error {
	cartID, err := parseIDParam(c, "cartId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPurchases, err)
	}

	res, err := h.purchaseService.GetPurchasesByCartID(c.Context(), cartID)
	if err != nil {
		if errors.Is(err, domain.ErrNoPurchasesForCart) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetPurchases, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPurchases, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPurchases)
}

func (h *purchaseHandler) GetPurchasesByProduct(c *fiber.Ctx) error {
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPurchases, err)
	}

	res, err := h.purchaseService.GetPurchasesByProductID(c.Context(), productID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPurchases, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPurchases)
}

func (h *purchaseHandler) UpdatePurchase(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePurchase, err)
	}

	req := new(domain.UpdatePurchaseRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePurchase, err)
	}

	res, err := h.purchaseService.UpdatePurchase(c.Context(), id, *req)
	if err != nil {
		if errors.Is(err, domain.ErrPurchaseNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdatePurchase, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePurchase, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdatePurchase)
}

func (h *purchaseHandler) DeletePurchase(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePurchase, err)
	}

	res, err := h.purchaseService.DeletePurchase(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPurchaseNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeletePurchase, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePurchase, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeletePurchase)
}
