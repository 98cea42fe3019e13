package config

import (
	"os"
	"time"

	"marketlens-backend/internal/api/handlers"
	"marketlens-backend/internal/api/routes"
	"marketlens-backend/internal/middleware"
	"marketlens-backend/internal/utils"
	"marketlens-backend/internal/utils/storage"
	"marketlens-backend/pkg/gemini"
	"marketlens-backend/pkg/item"
	"marketlens-backend/pkg/receipt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	geminiClient := gemini.NewClient(gemini.Config{
		APIKey: utils.GetConfig("GEMINI_API_KEY"),
		APIURL: utils.GetConfig("GEMINI_API_URL"),
	})

	// Repository
	receiptRepository := receipt.NewReceiptRepository(db)
	itemRepository := item.NewItemRepository(db)

	// Service
	receiptService := receipt.NewReceiptService(receiptRepository, geminiClient, s3)
	itemService := item.NewItemService(itemRepository, receiptRepository)

	// Handler
	receiptHandler := handlers.NewReceiptHandler(receiptService)
	itemHandler := handlers.NewItemHandler(itemService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		ReceiptHandler: receiptHandler,
		ItemHandler:    itemHandler,
		Middleware:     middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
