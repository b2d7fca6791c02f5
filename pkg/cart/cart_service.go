package cart

import (
	"context"
	"errors"
	"time"

	"grocery-tracker/domain"
	"grocery-tracker/entities"

	"gorm.io/gorm"
)

type (
	CartService interface {
		CreateCart(ctx context.Context, req domain.CreateCartRequest) (domain.CartResponse, error)
		GetCartByID(ctx context.Context, id uint) (domain.CartResponse, error)
		GetCarts(ctx context.Context, skip, limit int) ([]domain.CartResponse, error)
		GetAllCarts(ctx context.Context) ([]domain.CartResponse, error)
		UpdateCartTotal(ctx context.Context, id uint, req domain.UpdateCartRequest) (domain.CartResponse, error)
	}

	cartService struct {
		cartRepository CartRepository
	}
)

func NewCartService(cartRepository CartRepository) CartService {
	return &cartService{cartRepository: cartRepository}
}

func (s *cartService) CreateCart(ctx context.Context, req domain.CreateCartRequest) (domain.CartResponse, error) {
	purchaseDate, err := time.Parse(domain.DateFormat, req.PurchaseDate)
	if err != nil {
		return domain.CartResponse{}, domain.ErrInvalidPurchaseDate
	}

	cart := &entities.Cart{
		UserID:       req.UserID,
		Name:         req.Name,
		PurchaseDate: purchaseDate,
		StoreID:      req.StoreID,
		Total:        req.Total,
	}

	if err := s.cartRepository.CreateCart(ctx, cart); err != nil {
		return domain.CartResponse{}, err
	}

	return toCartResponse(cart), nil
}

func (s *cartService) GetCartByID(ctx context.Context, id uint) (domain.CartResponse, error) {
	cart, err := s.cartRepository.GetCartByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CartResponse{}, domain.ErrCartNotFound
		}
		return domain.CartResponse{}, err
	}
	return toCartResponse(cart), nil
}

func (s *cartService) GetCarts(ctx context.Context, skip, limit int) ([]domain.CartResponse, error) {
	carts, err := s.cartRepository.GetCarts(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	return toCartResponses(carts), nil
}

func (s *cartService) GetAllCarts(ctx context.Context) ([]domain.CartResponse, error) {
	carts, err := s.cartRepository.GetAllCarts(ctx)
	if err != nil {
		return nil, err
	}
	return toCartResponses(carts), nil
}

// UpdateCartTotal is the only mutation a cart supports after creation.
func (s *cartService) UpdateCartTotal(ctx context.Context, id uint, req domain.UpdateCartRequest) (domain.CartResponse, error) {
	cart, err := s.cartRepository.GetCartByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CartResponse{}, domain.ErrCartNotFound
		}
		return domain.CartResponse{}, err
	}

	cart.Total = *req.Total
	if err := s.cartRepository.UpdateCart(ctx, cart); err != nil {
		return domain.CartResponse{}, err
	}

	return toCartResponse(cart), nil
}

func toCartResponse(cart *entities.Cart) domain.CartResponse {
	return domain.CartResponse{
		ID:           cart.ID,
		UserID:       cart.UserID,
		Name:         cart.Name,
		PurchaseDate: cart.PurchaseDate,
		StoreID:      cart.StoreID,
		Total:        cart.Total,
	}
}

func toCartResponses(carts []*entities.Cart) []domain.CartResponse {
	response := make([]domain.CartResponse, 0, len(carts))
	for _, cart := range carts {
		response = append(response, toCartResponse(cart))
	}
	return response
}
