package routes

import (
	"marketlens-backend/internal/api/handlers"
	"marketlens-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	ReceiptHandler handlers.ReceiptHandler
	ItemHandler    handlers.ItemHandler
	Middleware     middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Receipts()
	c.Items()
	c.GuestRoute()
}

func (c *Config) Receipts() {
	receipts := c.App.Group("/api/receipts")
	{
		receipts.Post("/upload", c.ReceiptHandler.UploadReceipt)
		receipts.Get("", c.ReceiptHandler.GetReceipts)
		receipts.Delete("/:id", c.ReceiptHandler.DeleteReceipt)
	}
}

func (c *Config) Items() {
	items := c.App.Group("/api/items")
	{
		items.Get("/search", c.ItemHandler.SearchProductNames)
		items.Get("/history", c.ItemHandler.GetProductHistory)
		items.Get("/category-history", c.ItemHandler.GetCategoryHistory)
		items.Get("/search-smart", c.ItemHandler.SearchSmart)
		items.Put("/:id", c.ItemHandler.UpdateItem)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
