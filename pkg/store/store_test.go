package store

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
	require.NoError(t, db.AutoMigrate(&entities.Store{}))
	return db
}

func TestCreateStoreRoundTrip(t *testing.T) {
	service := NewStoreService(NewStoreRepository(setupTestDB(t)))
	ctx := context.Background()

	res, err := service.CreateStore(ctx, domain.CreateStoreRequest{
		Name:     "Corner Grocer",
		Location: "12 Broad St, Elizabeth, NJ 07201",
	})
	require.NoError(t, err)
	assert.NotZero(t, res.ID)

	fetched, err := service.GetStoreByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, res, fetched)
}

func TestGetStoreByIDNotFound(t *testing.T) {
	service := NewStoreService(NewStoreRepository(setupTestDB(t)))

	_, err := service.GetStoreByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestGetStoresPagination(t *testing.T) {
	service := NewStoreService(NewStoreRepository(setupTestDB(t)))
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := service.CreateStore(ctx, domain.CreateStoreRequest{
			Name:     fmt.Sprintf("Store %d", i),
			Location: "Newark, NJ",
		})
		require.NoError(t, err)
	}

	page, err := service.GetStores(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	all, err := service.GetStores(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
