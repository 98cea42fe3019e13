package handlers

import (
	"errors"

	"marketlens-backend/domain"
	"marketlens-backend/pkg/receipt"

	"github.com/gofiber/fiber/v2"
)

type (
	ReceiptHandler interface {
		UploadReceipt(c *fiber.Ctx) error
		GetReceipts(c *fiber.Ctx) error
		DeleteReceipt(c *fiber.Ctx) error
	}

	receiptHandler struct {
		receiptService receipt.ReceiptService
	}
)

func NewReceiptHandler(receiptService receipt.ReceiptService) ReceiptHandler {
	return &receiptHandler{receiptService: receiptService}
}

// UploadReceipt runs the ingestion pipeline on the uploaded image. Every
// failure kind surfaces as one opaque 500 with a readable message; callers
// retry by re-uploading.
func (h *receiptHandler) UploadReceipt(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": domain.MessageFailedBodyRequest + ": " + err.Error(),
		})
	}

	res, err := h.receiptService.IngestReceipt(c.Context(), file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": domain.MessageFailedUploadReceipt + ": " + err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *receiptHandler) GetReceipts(c *fiber.Ctx) error {
	receipts, err := h.receiptService.GetReceipts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": domain.MessageFailedGetReceipts,
		})
	}

	return c.Status(fiber.StatusOK).JSON(receipts)
}

func (h *receiptHandler) DeleteReceipt(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.receiptService.DeleteReceipt(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrReceiptNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": domain.MessageFailedDeleteReceipt,
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
