package user

import (
	"context"
	"errors"

	"grocery-tracker/domain"
	"grocery-tracker/entities"

	"gorm.io/gorm"
)

type (
	UserService interface {
		CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.UserResponse, error)
		GetUserByID(ctx context.Context, id string) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{userRepository: userRepository}
}

func (s *userService) CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.UserResponse, error) {
	_, err := s.userRepository.GetUserByID(ctx, req.UserID)
	if err == nil {
		return domain.UserResponse{}, domain.ErrUserAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	user := &entities.User{ID: req.UserID}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		UserID:    user.ID,
		CreatedAt: user.CreatedAt,
	}
}
