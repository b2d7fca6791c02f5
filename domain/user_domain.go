package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateUser = "user created successfully"
	MessageSuccessGetUser    = "user retrieved successfully"

	MessageFailedCreateUser = "failed to create user"
	MessageFailedGetUser    = "failed to retrieve user"

	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user id already exists")
)

type (
	CreateUserRequest struct {
		UserID string `json:"user_id" validate:"required"`
	}

	UserResponse struct {
		UserID    string    `json:"user_id"`
		CreatedAt time.Time `json:"created_at"`
	}
)
