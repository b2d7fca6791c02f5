package product

import (
	"context"
	"fmt"
	"testing"

	"grocery-tracker/domain"
	"grocery-tracker/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Product{}))
	return db
}

func widgetRequest() domain.CreateProductRequest {
	return domain.CreateProductRequest{
		Brand:             "BrandA",
		Name:              "Widget",
		Quantity:          2,
		Packaging:         "Box",
		UnitQuantity:      1.0,
		UnitOfMeasurement: "oz",
	}
}

func TestCreateProductRoundTrip(t *testing.T) {
	service := NewProductService(NewProductRepository(setupTestDB(t)))
	ctx := context.Background()

	res, err := service.CreateProduct(ctx, widgetRequest())
	require.NoError(t, err)
	assert.NotZero(t, res.ID)
	assert.Equal(t, "BrandA", res.Brand)
	assert.Equal(t, "Widget", res.Name)
	assert.Equal(t, 2.0, res.Quantity)
	assert.Equal(t, "Box", res.Packaging)
	assert.Equal(t, 1.0, res.UnitQuantity)
	assert.Equal(t, "oz", res.UnitOfMeasurement)

	fetched, err := service.GetProductByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, res, fetched)
}

func TestCreateProductDuplicateIdentityRejected(t *testing.T) {
	db := setupTestDB(t)
	service := NewProductService(NewProductRepository(db))
	ctx := context.Background()

	_, err := service.CreateProduct(ctx, widgetRequest())
	require.NoError(t, err)

	_, err = service.CreateProduct(ctx, widgetRequest())
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&entities.Product{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateProductSameNameDifferentPackaging(t *testing.T) {
	service := NewProductService(NewProductRepository(setupTestDB(t)))
	ctx := context.Background()

	_, err := service.CreateProduct(ctx, widgetRequest())
	require.NoError(t, err)

	other := widgetRequest()
	other.Packaging = "Bag"
	_, err = service.CreateProduct(ctx, other)
	require.NoError(t, err)
}

func TestGetProductByIDNotFound(t *testing.T) {
	service := NewProductService(NewProductRepository(setupTestDB(t)))

	_, err := service.GetProductByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetProductsPagination(t *testing.T) {
	service := NewProductService(NewProductRepository(setupTestDB(t)))
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		req := widgetRequest()
		req.Name = fmt.Sprintf("Widget %d", i)
		_, err := service.CreateProduct(ctx, req)
		require.NoError(t, err)
	}

	first, err := service.GetProducts(ctx, 0, 3)
	require.NoError(t, err)
	second, err := service.GetProducts(ctx, 3, 3)
	require.NoError(t, err)
	all, err := service.GetProducts(ctx, 0, 6)
	require.NoError(t, err)

	require.Len(t, first, 3)
	require.Len(t, second, 3)
	require.Len(t, all, 6)

	seen := make(map[uint]bool)
	for _, p := range first {
		seen[p.ID] = true
	}
	for _, p := range second {
		assert.False(t, seen[p.ID], "pages must be disjoint")
		seen[p.ID] = true
	}
	for _, p := range all {
		assert.True(t, seen[p.ID], "union of pages must equal the full listing")
	}
}

func TestSearchProducts(t *testing.T) {
	service := NewProductService(NewProductRepository(setupTestDB(t)))
	ctx := context.Background()

	names := []string{"Orange Juice", "Apple Juice", "Paper Towels"}
	for _, name := range names {
		req := widgetRequest()
		req.Name = name
		_, err := service.CreateProduct(ctx, req)
		require.NoError(t, err)
	}

	res, err := service.SearchProducts(ctx, "orange", 0, 10)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Orange Juice", res[0].Name)

	res, err = service.SearchProducts(ctx, "juice", 0, 10)
	require.NoError(t, err)
	assert.Len(t, res, 2)

	_, err = service.SearchProducts(ctx, "nonexistent", 0, 10)
	assert.ErrorIs(t, err, domain.ErrNoProductsMatch)

	_, err = service.SearchProducts(ctx, "  ", 0, 10)
	assert.ErrorIs(t, err, domain.ErrEmptySearchTerm)
}

func TestSearchProductsMatchesBrand(t *testing.T) {
	service := NewProductService(NewProductRepository(setupTestDB(t)))
	ctx := context.Background()

	req := widgetRequest()
	req.Brand = "SunnyFarms"
	_, err := service.CreateProduct(ctx, req)
	require.NoError(t, err)

	res, err := service.SearchProducts(ctx, "sunny", 0, 10)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "SunnyFarms", res[0].Brand)
}

func TestQueryProducts(t *testing.T) {
	service := NewProductService(NewProductRepository(setupTestDB(t)))
	ctx := context.Background()

	for i, brand := range []string{"BrandA", "BrandA", "BrandB"} {
		req := widgetRequest()
		req.Brand = brand
		req.Name = fmt.Sprintf("Item %d", i)
		_, err := service.CreateProduct(ctx, req)
		require.NoError(t, err)
	}

	brandA := "BrandA"
	res, err := service.QueryProducts(ctx, domain.ProductQueryRequest{Brand: &brandA})
	require.NoError(t, err)
	assert.Len(t, res, 2)

	name := "item 2"
	res, err = service.QueryProducts(ctx, domain.ProductQueryRequest{Name: &name})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "BrandB", res[0].Brand)

	// no filters behaves like a plain listing with the default limit
	res, err = service.QueryProducts(ctx, domain.ProductQueryRequest{})
	require.NoError(t, err)
	assert.Len(t, res, 3)
}
