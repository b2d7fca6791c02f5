package config

import (
	"os"
	"time"

	"grocery-tracker/internal/api/handlers"
	"grocery-tracker/internal/api/routes"
	"grocery-tracker/internal/middleware"
	"grocery-tracker/internal/utils"
	"grocery-tracker/pkg/cart"
	"grocery-tracker/pkg/grocerylist"
	"grocery-tracker/pkg/lookup"
	"grocery-tracker/pkg/product"
	"grocery-tracker/pkg/purchase"
	"grocery-tracker/pkg/store"
	"grocery-tracker/pkg/user"

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

	// Repository
	storeRepository := store.NewStoreRepository(db)
	productRepository := product.NewProductRepository(db)
	userRepository := user.NewUserRepository(db)
	cartRepository := cart.NewCartRepository(db)
	purchaseRepository := purchase.NewPurchaseRepository(db)
	groceryListRepository := grocerylist.NewGroceryListRepository(db)
	lookupRepository := lookup.NewLookupRepository(db)

	// Service
	storeService := store.NewStoreService(storeRepository)
	productService := product.NewProductService(productRepository)
	userService := user.NewUserService(userRepository)
	cartService := cart.NewCartService(cartRepository)
	purchaseService := purchase.NewPurchaseService(purchaseRepository)
	groceryListService := grocerylist.NewGroceryListService(groceryListRepository)
	lookupService := lookup.NewLookupService(lookupRepository)

	// Handler
	storeHandler := handlers.NewStoreHandler(storeService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	userHandler := handlers.NewUserHandler(userService, validator)
	cartHandler := handlers.NewCartHandler(cartService, validator)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService, validator)
	groceryListHandler := handlers.NewGroceryListHandler(groceryListService, validator)
	lookupHandler := handlers.NewLookupHandler(lookupService, validator)

	// routes
	routesConfig := routes.Config{
		App:                app,
		StoreHandler:       storeHandler,
		ProductHandler:     productHandler,
		UserHandler:        userHandler,
		CartHandler:        cartHandler,
		PurchaseHandler:    purchaseHandler,
		GroceryListHandler: groceryListHandler,
		LookupHandler:      lookupHandler,
		Middleware:         middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
