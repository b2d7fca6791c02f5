package cart

import (
	"context"
	"fmt"
	"testing"
	"time"

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
	require.NoError(t, db.AutoMigrate(&entities.Cart{}))
	return db
}

func cartRequest() domain.CreateCartRequest {
	return domain.CreateCartRequest{
		UserID:       "user-1",
		Name:         "Weekly shop",
		PurchaseDate: "2024-01-01",
		StoreID:      1,
	}
}

func TestCreateCartRoundTrip(t *testing.T) {
	service := NewCartService(NewCartRepository(setupTestDB(t)))
	ctx := context.Background()

	res, err := service.CreateCart(ctx, cartRequest())
	require.NoError(t, err)
	assert.NotZero(t, res.ID)
	assert.Equal(t, "user-1", res.UserID)
	assert.Equal(t, "Weekly shop", res.Name)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), res.PurchaseDate.UTC())
	assert.Zero(t, res.Total)

	fetched, err := service.GetCartByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.ID, fetched.ID)
	assert.Equal(t, res.Total, fetched.Total)
}

func TestCreateCartRejectsBadPurchaseDate(t *testing.T) {
	service := NewCartService(NewCartRepository(setupTestDB(t)))

	req := cartRequest()
	req.PurchaseDate = "01/01/2024"

	_, err := service.CreateCart(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidPurchaseDate)
}

func TestGetCartByIDNotFound(t *testing.T) {
	service := NewCartService(NewCartRepository(setupTestDB(t)))

	_, err := service.GetCartByID(context.Background(), 123)
	assert.ErrorIs(t, err, domain.ErrCartNotFound)
}

func TestUpdateCartTotal(t *testing.T) {
	service := NewCartService(NewCartRepository(setupTestDB(t)))
	ctx := context.Background()

	created, err := service.CreateCart(ctx, cartRequest())
	require.NoError(t, err)

	total := 29.97
	updated, err := service.UpdateCartTotal(ctx, created.ID, domain.UpdateCartRequest{Total: &total})
	require.NoError(t, err)
	assert.Equal(t, 29.97, updated.Total)
	assert.Equal(t, created.UserID, updated.UserID)

	fetched, err := service.GetCartByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 29.97, fetched.Total)
}

func TestUpdateCartTotalNotFound(t *testing.T) {
	service := NewCartService(NewCartRepository(setupTestDB(t)))

	total := 10.0
	_, err := service.UpdateCartTotal(context.Background(), 42, domain.UpdateCartRequest{Total: &total})
	assert.ErrorIs(t, err, domain.ErrCartNotFound)
}

func TestGetCartsPaginationAndAll(t *testing.T) {
	service := NewCartService(NewCartRepository(setupTestDB(t)))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := service.CreateCart(ctx, cartRequest())
		require.NoError(t, err)
	}

	page, err := service.GetCarts(ctx, 0, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	all, err := service.GetAllCarts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5, "the unpaginated listing ignores skip and limit")
}
