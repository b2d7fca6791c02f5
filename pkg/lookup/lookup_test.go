package lookup

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
	require.NoError(t, db.AutoMigrate(&entities.PackagingOption{}, &entities.UnitOfMeasurement{}))
	return db
}

func TestPackagingOptions(t *testing.T) {
	service := NewLookupService(NewLookupRepository(setupTestDB(t)))
	ctx := context.Background()

	created, err := service.CreatePackagingOption(ctx, domain.CreatePackagingOptionRequest{PackagingType: "Bottle"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	fetched, err := service.GetPackagingOptionByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bottle", fetched.PackagingType)

	_, err = service.CreatePackagingOption(ctx, domain.CreatePackagingOptionRequest{PackagingType: "Bottle"})
	require.Error(t, err, "packaging type is unique")

	_, err = service.CreatePackagingOption(ctx, domain.CreatePackagingOptionRequest{PackagingType: "Box"})
	require.NoError(t, err)

	options, err := service.GetPackagingOptions(ctx)
	require.NoError(t, err)
	assert.Len(t, options, 2)
}

func TestUnitsOfMeasurement(t *testing.T) {
	service := NewLookupService(NewLookupRepository(setupTestDB(t)))
	ctx := context.Background()

	created, err := service.CreateUnitOfMeasurement(ctx, domain.CreateUnitOfMeasurementRequest{UnitName: "oz"})
	require.NoError(t, err)

	fetched, err := service.GetUnitOfMeasurementByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "oz", fetched.UnitName)

	_, err = service.CreateUnitOfMeasurement(ctx, domain.CreateUnitOfMeasurementRequest{UnitName: "oz"})
	require.Error(t, err, "unit name is unique")

	_, err = service.GetUnitOfMeasurementByID(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrUnitOfMeasurementNotFound)
}
