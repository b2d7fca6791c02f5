package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	migration "grocery-tracker/cmd/database/migrate"
	"grocery-tracker/entities"
	"grocery-tracker/pkg/cart"
	"grocery-tracker/pkg/product"
	"grocery-tracker/pkg/purchase"
	"grocery-tracker/pkg/store"
	"grocery-tracker/pkg/user"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/gorm"
)

const (
	numProducts     = 1000
	numStores       = 100
	numCarts        = 500
	minItemsPerCart = 5
	maxItemsPerCart = 20
)

var (
	categories = []string{
		"Beverages", "Snacks", "Dairy", "Bakery", "Meat",
		"Frozen", "Produce", "Pantry", "Cleaning Supplies",
	}
	brands             = []string{"BrandA", "BrandB", "BrandC", "BrandD", "BrandE"}
	unitOfMeasurements = []string{"oz", "g", "ml", "lb", "kg"}
	packagingOptions   = []string{"Bottle", "Box", "Can", "Bag", "Carton", "Pack", "Jar"}

	newJerseyCities = map[string]map[string][]string{
		"Elizabeth": {
			"07201": {"Broad St", "Garden St"},
			"07202": {"Jefferson Ave", "Elmora Ave"},
		},
		"Newark": {
			"07102": {"Market St", "Springfield Ave"},
		},
		"Jersey City": {
			"07302": {"Montgomery St", "Pavonia Ave"},
		},
	}
)

// Run seeds lookup tables, then generates synthetic rows in dependency
// order: products and stores first, then carts with their purchases.
func Run(ctx context.Context, db *gorm.DB, userID string) error {
	if err := migration.SeedLookups(db); err != nil {
		return err
	}

	userRepository := user.NewUserRepository(db)
	if _, err := userRepository.GetUserByID(ctx, userID); err != nil {
		if err := userRepository.CreateUser(ctx, &entities.User{ID: userID}); err != nil {
			return err
		}
	}

	products, err := seedProducts(ctx, db)
	if err != nil {
		return err
	}

	stores, err := seedStores(ctx, db)
	if err != nil {
		return err
	}

	return seedCartsAndPurchases(ctx, db, userID, products, stores)
}

func seedProducts(ctx context.Context, db *gorm.DB) ([]*entities.Product, error) {
	productRepository := product.NewProductRepository(db)

	products := make([]*entities.Product, 0, numProducts)
	for i := 0; i < numProducts; i++ {
		category := pick(categories)
		p := &entities.Product{
			Brand:             pick(brands),
			Name:              fmt.Sprintf("%s %s", gofakeit.Word(), category),
			Quantity:          float64(gofakeit.Number(1, 10)),
			Packaging:         pick(packagingOptions),
			UnitQuantity:      round2(gofakeit.Float64Range(1, 5)),
			UnitOfMeasurement: pick(unitOfMeasurements),
		}
		if err := productRepository.CreateProduct(ctx, p); err != nil {
			// random six-tuple collided with an earlier row, skip it
			log.Printf("skipping duplicate product: %v", err)
			continue
		}
		products = append(products, p)
	}

	log.Printf("seeded %d products", len(products))
	return products, nil
}

func seedStores(ctx context.Context, db *gorm.DB) ([]*entities.Store, error) {
	storeRepository := store.NewStoreRepository(db)

	stores := make([]*entities.Store, 0, numStores)
	for i := 0; i < numStores; i++ {
		city := pickKey(newJerseyCities)
		zip := pickKey(newJerseyCities[city])
		street := pick(newJerseyCities[city][zip])

		s := &entities.Store{
			Name:     gofakeit.Company(),
			Location: fmt.Sprintf("%d %s, %s, NJ %s", gofakeit.Number(1, 9999), street, city, zip),
		}
		if err := storeRepository.CreateStore(ctx, s); err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}

	log.Printf("seeded %d stores", len(stores))
	return stores, nil
}

func seedCartsAndPurchases(ctx context.Context, db *gorm.DB, userID string, products []*entities.Product, stores []*entities.Store) error {
	cartRepository := cart.NewCartRepository(db)
	purchaseRepository := purchase.NewPurchaseRepository(db)

	now := time.Now()
	twoYearsAgo := now.AddDate(-2, 0, 0)

	for i := 0; i < numCarts; i++ {
		s := stores[gofakeit.Number(0, len(stores)-1)]
		cartDate := gofakeit.DateRange(twoYearsAgo, now)
		itemCount := gofakeit.Number(minItemsPerCart, maxItemsPerCart)

		type draft struct {
			product  *entities.Product
			price    float64
			quantity int
			onSale   bool
		}

		drafts := make([]draft, 0, itemCount)
		cartTotal := 0.0
		for j := 0; j < itemCount; j++ {
			d := draft{
				product:  products[gofakeit.Number(0, len(products)-1)],
				price:    round2(gofakeit.Float64Range(1.0, 50.0)),
				quantity: gofakeit.Number(1, 5),
				onSale:   gofakeit.Bool(),
			}
			cartTotal += d.price * float64(d.quantity)
			drafts = append(drafts, d)
		}

		c := &entities.Cart{
			UserID:       userID,
			Name:         fmt.Sprintf("Cart for %s", userID),
			PurchaseDate: cartDate,
			StoreID:      s.ID,
			Total:        round2(cartTotal),
		}
		if err := cartRepository.CreateCart(ctx, c); err != nil {
			return err
		}

		for _, d := range drafts {
			p := &entities.Purchase{
				ProductID: d.product.ID,
				CartID:    c.ID,
				Quantity:  d.quantity,
				Price:     d.price,
				OnSale:    d.onSale,
				Purchased: true,
				InputDate: cartDate,
			}
			if err := purchaseRepository.CreatePurchase(ctx, p); err != nil {
				return err
			}
		}
	}

	log.Printf("seeded %d carts", numCarts)
	return nil
}

func pick(values []string) string {
	return values[gofakeit.Number(0, len(values)-1)]
}

func pickKey[V any](m map[string]V) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys[gofakeit.Number(0, len(keys)-1)]
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
