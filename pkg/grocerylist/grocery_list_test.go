package grocerylist

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
	require.NoError(t, db.AutoMigrate(&entities.GroceryList{}, &entities.GroceryListItem{}))
	return db
}

func TestCreateGroceryListAndListByUser(t *testing.T) {
	service := NewGroceryListService(NewGroceryListRepository(setupTestDB(t)))
	ctx := context.Background()

	res, err := service.CreateGroceryList(ctx, domain.CreateGroceryListRequest{Name: "Weekend", UserID: "user-1"})
	require.NoError(t, err)
	assert.NotZero(t, res.ID)
	assert.Equal(t, "Weekend", res.Name)

	_, err = service.CreateGroceryList(ctx, domain.CreateGroceryListRequest{Name: "Party", UserID: "user-1"})
	require.NoError(t, err)
	_, err = service.CreateGroceryList(ctx, domain.CreateGroceryListRequest{Name: "Other", UserID: "user-2"})
	require.NoError(t, err)

	lists, err := service.GetGroceryListsByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, lists, 2)

	lists, err = service.GetGroceryListsByUserID(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, lists)
}

func TestUpdateGroceryListName(t *testing.T) {
	service := NewGroceryListService(NewGroceryListRepository(setupTestDB(t)))
	ctx := context.Background()

	created, err := service.CreateGroceryList(ctx, domain.CreateGroceryListRequest{Name: "Old", UserID: "user-1"})
	require.NoError(t, err)

	updated, err := service.UpdateGroceryList(ctx, created.ID, domain.UpdateGroceryListRequest{Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, created.ID, updated.ID)

	_, err = service.UpdateGroceryList(ctx, 999, domain.UpdateGroceryListRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrGroceryListNotFound)
}

func TestDeleteGroceryListAbsentIsNoOp(t *testing.T) {
	service := NewGroceryListService(NewGroceryListRepository(setupTestDB(t)))
	ctx := context.Background()

	created, err := service.CreateGroceryList(ctx, domain.CreateGroceryListRequest{Name: "Doomed", UserID: "user-1"})
	require.NoError(t, err)

	deleted, err := service.DeleteGroceryList(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, created.ID, deleted.ID)

	// second delete of the same id is a no-op, not an error
	deleted, err = service.DeleteGroceryList(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, deleted)
}

func TestAddGroceryListItemDefaults(t *testing.T) {
	service := NewGroceryListService(NewGroceryListRepository(setupTestDB(t)))
	ctx := context.Background()

	list, err := service.CreateGroceryList(ctx, domain.CreateGroceryListRequest{Name: "Weekend", UserID: "user-1"})
	require.NoError(t, err)

	item, err := service.AddGroceryListItem(ctx, list.ID, domain.AddGroceryListItemRequest{ProductID: 1})
	require.NoError(t, err)
	assert.Equal(t, 1.0, item.Quantity, "quantity defaults to 1 when omitted")
	assert.Equal(t, 1.0, item.UnitQuantity, "unit quantity defaults to 1 when omitted")
	assert.Nil(t, item.UnitPrice)
	assert.Nil(t, item.Total)
	assert.Nil(t, item.Notes)
}

func TestAddGroceryListItemExplicitFields(t *testing.T) {
	service := NewGroceryListService(NewGroceryListRepository(setupTestDB(t)))
	ctx := context.Background()

	list, err := service.CreateGroceryList(ctx, domain.CreateGroceryListRequest{Name: "Weekend", UserID: "user-1"})
	require.NoError(t, err)

	quantity := 2.0
	unitPrice := 3.49
	notes := "ripe ones"
	item, err := service.AddGroceryListItem(ctx, list.ID, domain.AddGroceryListItemRequest{
		ProductID: 1,
		Quantity:  &quantity,
		UnitPrice: &unitPrice,
		Notes:     &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, 2.0, item.Quantity)
	require.NotNil(t, item.UnitPrice)
	assert.Equal(t, 3.49, *item.UnitPrice)
	require.NotNil(t, item.Notes)
	assert.Equal(t, "ripe ones", *item.Notes)

	items, err := service.GetGroceryListItems(ctx, list.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
}

func TestAddGroceryListItemMissingList(t *testing.T) {
	service := NewGroceryListService(NewGroceryListRepository(setupTestDB(t)))

	_, err := service.AddGroceryListItem(context.Background(), 404, domain.AddGroceryListItemRequest{ProductID: 1})
	assert.ErrorIs(t, err, domain.ErrGroceryListNotFound)
}
