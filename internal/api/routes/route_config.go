package routes

import (
	"grocery-tracker/internal/api/handlers"
	"grocery-tracker/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	StoreHandler       handlers.StoreHandler
	ProductHandler     handlers.ProductHandler
	UserHandler        handlers.UserHandler
	CartHandler        handlers.CartHandler
	PurchaseHandler    handlers.PurchaseHandler
	GroceryListHandler handlers.GroceryListHandler
	LookupHandler      handlers.LookupHandler
	Middleware         middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Stores()
	c.Products()
	c.Users()
	c.Carts()
	c.Purchases()
	c.GroceryLists()
	c.Lookups()
	c.GuestRoute()
}

func (c *Config) Stores() {
	stores := c.App.Group("/api/v1/stores")
	{
		stores.Post("", c.StoreHandler.CreateStore)
		stores.Get("", c.StoreHandler.GetStores)
		stores.Get("/:id", c.StoreHandler.GetStoreDetails)
	}
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products")
	{
		products.Post("", c.ProductHandler.CreateProduct)
		products.Get("", c.ProductHandler.GetProducts)
		// static paths before the :id wildcard
		products.Get("/search", c.ProductHandler.SearchProducts)
		products.Post("/query", c.ProductHandler.QueryProducts)
		products.Get("/:id", c.ProductHandler.GetProductDetails)
	}
}

func (c *Config) Users() {
	users := c.App.Group("/api/v1/users")
	{
		users.Post("", c.UserHandler.CreateUser)
		users.Get("/:id", c.UserHandler.GetUserDetails)
	}
}

func (c *Config) Carts() {
	carts := c.App.Group("/api/v1/carts")
	{
		carts.Post("", c.CartHandler.CreateCart)
		carts.Get("", c.CartHandler.GetCarts)
		carts.Get("/all", c.CartHandler.GetAllCarts)
		carts.Get("/:id", c.CartHandler.GetCartDetails)
		carts.Put("/:id", c.CartHandler.UpdateCartTotal)
	}
}

func (c *Config) Purchases() {
	purchases := c.App.Group("/api/v1/purchases")
	{
		purchases.Post("", c.PurchaseHandler.CreatePurchase)
		purchases.Get("", c.PurchaseHandler.GetPurchases)
		purchases.Get("/cart/:cartId", c.PurchaseHandler.GetPurchasesByCart)
		purchases.Get("/product/:productId", c.PurchaseHandler.GetPurchasesByProduct)
		purchases.Get("/:id", c.PurchaseHandler.GetPurchaseDetails)
		purchases.Put("/:id", c.PurchaseHandler.UpdatePurchase)
		purchases.Delete("/:id", c.PurchaseHandler.DeletePurchase)
	}
}

func (c *Config) GroceryLists() {
	lists := c.App.Group("/api/v1/grocery-lists")
	{
		lists.Post("", c.GroceryListHandler.CreateGroceryList)
		lists.Get("/user/:userId", c.GroceryListHandler.GetGroceryLists)
		lists.Get("/:id/items", c.GroceryListHandler.GetGroceryListItems)
		lists.Post("/:id/items", c.GroceryListHandler.AddGroceryListItem)
		lists.Put("/:id", c.GroceryListHandler.UpdateGroceryList)
		lists.Delete("/:id", c.GroceryListHandler.DeleteGroceryList)
	}
}

func (c *Config) Lookups() {
	packaging := c.App.Group("/api/v1/packaging-options")
	{
		packaging.Post("", c.LookupHandler.CreatePackagingOption)
		packaging.Get("", c.LookupHandler.GetPackagingOptions)
		packaging.Get("/:id", c.LookupHandler.GetPackagingOptionDetails)
	}

	units := c.App.Group("/api/v1/units-of-measurement")
	{
		units.Post("", c.LookupHandler.CreateUnitOfMeasurement)
		units.Get("", c.LookupHandler.GetUnitsOfMeasurement)
		units.Get("/:id", c.LookupHandler.GetUnitOfMeasurementDetails)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
