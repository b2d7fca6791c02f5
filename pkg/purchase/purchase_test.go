package purchase

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
	require.NoError(t, db.AutoMigrate(&entities.Purchase{}))
	return db
}

func purchaseRequest() domain.CreatePurchaseRequest {
	return domain.CreatePurchaseRequest{
		ProductID: 1,
		CartID:    1,
		Quantity:  3,
		Price:     9.99,
		OnSale:    true,
		InputDate: "2024-01-01T00:00:00Z",
	}
}

func TestCreatePurchaseDefaultsPurchased(t *testing.T) {
	service := NewPurchaseService(NewPurchaseRepository(setupTestDB(t)))

	res, err := service.CreatePurchase(context.Background(), purchaseRequest())
	require.NoError(t, err)
	assert.NotZero(t, res.ID)
	assert.True(t, res.Purchased, "purchased must default to true when the field is absent")
	assert.True(t, res.OnSale)
	assert.Equal(t, 3, res.Quantity)
	assert.Equal(t, 9.99, res.Price)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), res.InputDate.UTC())
}

func TestCreatePurchaseExplicitPurchasedFalse(t *testing.T) {
	service := NewPurchaseService(NewPurchaseRepository(setupTestDB(t)))

	req := purchaseRequest()
	purchased := false
	req.Purchased = &purchased

	res, err := service.CreatePurchase(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, res.Purchased)

	fetched, err := service.GetPurchaseByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.False(t, fetched.Purchased, "explicit false must survive the insert")
}

func TestCreatePurchaseRejectsBadInputDate(t *testing.T) {
	service := NewPurchaseService(NewPurchaseRepository(setupTestDB(t)))

	req := purchaseRequest()
	req.InputDate = "not-a-date"

	_, err := service.CreatePurchase(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInputDate)
}

func TestUpdatePurchasePartial(t *testing.T) {
	service := NewPurchaseService(NewPurchaseRepository(setupTestDB(t)))
	ctx := context.Background()

	created, err := service.CreatePurchase(ctx, purchaseRequest())
	require.NoError(t, err)

	purchased := false
	updated, err := service.UpdatePurchase(ctx, created.ID, domain.UpdatePurchaseRequest{Purchased: &purchased})
	require.NoError(t, err)

	assert.False(t, updated.Purchased)
	assert.Equal(t, created.Quantity, updated.Quantity, "absent fields must be left untouched")
	assert.Equal(t, created.Price, updated.Price)
	assert.Equal(t, created.OnSale, updated.OnSale)
	assert.Equal(t, created.InputDate.UTC(), updated.InputDate.UTC())

	fetched, err := service.GetPurchaseByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, fetched.Purchased)
	assert.Equal(t, created.Price, fetched.Price)
}

func TestUpdatePurchaseNotFound(t *testing.T) {
	service := NewPurchaseService(NewPurchaseRepository(setupTestDB(t)))

	quantity := 5
	_, err := service.UpdatePurchase(context.Background(), 42, domain.UpdatePurchaseRequest{Quantity: &quantity})
	assert.ErrorIs(t, err, domain.ErrPurchaseNotFound)
}

func TestDeletePurchaseTwice(t *testing.T) {
	service := NewPurchaseService(NewPurchaseRepository(setupTestDB(t)))
	ctx := context.Background()

	created, err := service.CreatePurchase(ctx, purchaseRequest())
	require.NoError(t, err)

	deleted, err := service.DeletePurchase(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID, "delete returns the last-known state")

	_, err = service.DeletePurchase(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrPurchaseNotFound)
}

func TestGetPurchasesByCartID(t *testing.T) {
	service := NewPurchaseService(NewPurchaseRepository(setupTestDB(t)))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		req := purchaseRequest()
		req.CartID = 7
		_, err := service.CreatePurchase(ctx, req)
		require.NoError(t, err)
	}

	res, err := service.GetPurchasesByCartID(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, res, 3)

	_, err = service.GetPurchasesByCartID(ctx, 8)
	assert.ErrorIs(t, err, domain.ErrNoPurchasesForCart)
}

func TestGetPurchasesByProductIDEmptyIsNotAnError(t *testing.T) {
	service := NewPurchaseService(NewPurchaseRepository(setupTestDB(t)))

	res, err := service.GetPurchasesByProductID(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, res)
}
