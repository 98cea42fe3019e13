package handlers

import (
	"errors"

	"marketlens-backend/domain"
	"marketlens-backend/pkg/item"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ItemHandler interface {
		UpdateItem(c *fiber.Ctx) error
		SearchProductNames(c *fiber.Ctx) error
		GetProductHistory(c *fiber.Ctx) error
		GetCategoryHistory(c *fiber.Ctx) error
		SearchSmart(c *fiber.Ctx) error
	}

	itemHandler struct {
		itemService item.ItemService
		validator   *validator.Validate
	}
)

func NewItemHandler(itemService item.ItemService, validator *validator.Validate) ItemHandler {
	return &itemHandler{
		itemService: itemService,
		validator:   validator,
	}
}

func (h *itemHandler) UpdateItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.UpdateItemRequest)

	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": domain.MessageFailedBodyRequest,
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": domain.MessageFailedUpdateItem + ": " + err.Error(),
		})
	}

	updated, err := h.itemService.UpdateItem(c.Context(), itemID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": domain.MessageFailedUpdateItem,
		})
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *itemHandler) SearchProductNames(c *fiber.Ctx) error {
	names, err := h.itemService.SearchProductNames(c.Context(), c.Query("name"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": domain.MessageFailedSearchItems,
		})
	}

	return c.Status(fiber.StatusOK).JSON(names)
}

func (h *itemHandler) GetProductHistory(c *fiber.Ctx) error {
	history, err := h.itemService.GetProductHistory(c.Context(), c.Query("exactName"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": domain.MessageFailedGetHistory,
		})
	}

	return c.Status(fiber.StatusOK).JSON(history)
}

func (h *itemHandler) GetCategoryHistory(c *fiber.Ctx) error {
	history, err := h.itemService.GetCategoryHistory(c.Context(), c.Query("categoryName"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": domain.MessageFailedGetHistory,
		})
	}

	return c.Status(fiber.StatusOK).JSON(history)
}

func (h *itemHandler) SearchSmart(c *fiber.Ctx) error {
	results, err := h.itemService.SearchSmart(c.Context(), c.Query("name"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": domain.MessageFailedSearchItems,
		})
	}

	return c.Status(fiber.StatusOK).JSON(results)
}
