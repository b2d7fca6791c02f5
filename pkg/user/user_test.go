package user

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
	require.NoError(t, db.AutoMigrate(&entities.User{}))
	return db
}

func TestCreateUserRoundTrip(t *testing.T) {
	service := NewUserService(NewUserRepository(setupTestDB(t)))
	ctx := context.Background()

	res, err := service.CreateUser(ctx, domain.CreateUserRequest{UserID: "auth0|abc123"})
	require.NoError(t, err)
	assert.Equal(t, "auth0|abc123", res.UserID)
	assert.False(t, res.CreatedAt.IsZero())

	fetched, err := service.GetUserByID(ctx, "auth0|abc123")
	require.NoError(t, err)
	assert.Equal(t, res.UserID, fetched.UserID)
}

func TestCreateUserDuplicateRejected(t *testing.T) {
	service := NewUserService(NewUserRepository(setupTestDB(t)))
	ctx := context.Background()

	_, err := service.CreateUser(ctx, domain.CreateUserRequest{UserID: "auth0|abc123"})
	require.NoError(t, err)

	_, err = service.CreateUser(ctx, domain.CreateUserRequest{UserID: "auth0|abc123"})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestGetUserByIDNotFound(t *testing.T) {
	service := NewUserService(NewUserRepository(setupTestDB(t)))

	_, err := service.GetUserByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
