package purchase

import (
	"context"
	"errors"
	"time"

	"grocery-tracker/domain"
	"grocery-tracker/entities"

	"gorm.io/gorm"
)

type (
	PurchaseService interface {
		CreatePurchase(ctx context.Context, req domain.CreatePurchaseRequest) (domain.PurchaseResponse, error)
		GetPurchaseByID(ctx context.Context, id uint) (domain.PurchaseResponse, error)
		GetPurchases(ctx context.Context, skip, limit int) ([]domain.PurchaseResponse, error)
		GetPurchasesByCartID(ctx context.Context, cartID uint) ([]domain.PurchaseResponse, error)
		GetPurchasesByProductID(ctx context.Context, productID uint) ([]domain.PurchaseResponse, error)
		UpdatePurchase(ctx context.Context, id uint, req domain.UpdatePurchaseRequest) (domain.PurchaseResponse, error)
		DeletePurchase(ctx context.Context, id uint) (domain.PurchaseResponse, error)
	}

	purchaseService struct {
		purchaseRepository PurchaseRepository
	}
)

func NewPurchaseService(purchaseRepository PurchaseRepository) PurchaseService {
	return &purchaseService{purchaseRepository: purchaseRepository}
}

func (s *purchaseService) CreatePurchase(ctx context.Context, req domain.CreatePurchaseRequest) (domain.PurchaseResponse, error) {
	inputDate, err := time.Parse(time.RFC3339, req.InputDate)
	if err != nil {
		return domain.PurchaseResponse{}, domain.ErrInvalidInputDate
	}

	// Purchased defaults to true when the field is absent.
	purchased := true
	if req.Purchased != nil {
		purchased = *req.Purchased
	}

	purchase := &entities.Purchase{
		ProductID: req.ProductID,
		CartID:    req.CartID,
		Quantity:  req.Quantity,
		Price:     req.Price,
		OnSale:    req.OnSale,
		Purchased: purchased,
		InputDate: inputDate,
	}

	if err := s.purchaseRepository.CreatePurchase(ctx, purchase); err != nil {
		return domain.PurchaseResponse{}, err
	}

	return toPurchaseResponse(purchase), nil
}

func (s *purchaseService) GetPurchaseByID(ctx context.Context, id uint) (domain.PurchaseResponse, error) {
	purchase, err := s.purchaseRepository.GetPurchaseByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PurchaseResponse{}, domain.ErrPurchaseNotFound
		}
		return domain.PurchaseResponse{}, err
	}
	return toPurchaseResponse(purchase), nil
}

func (s *purchaseService) GetPurchases(ctx context.Context, skip, limit int) ([]domain.PurchaseResponse, error) {
	purchases, err := s.purchaseRepository.GetPurchases(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	return toPurchaseResponses(purchases), nil
}

func (s *purchaseService) GetPurchasesByCartID(ctx context.Context, cartID uint) ([]domain.PurchaseResponse, error) {
	purchases, err := s.purchaseRepository.GetPurchasesByCartID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if len(purchases) == 0 {
		return nil, domain.ErrNoPurchasesForCart
	}
	return toPurchaseResponses(purchases), nil
}

func (s *purchaseService) GetPurchasesByProductID(ctx context.Context, productID uint) ([]domain.PurchaseResponse, error) {
	purchases, err := s.purchaseRepository.GetPurchasesByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return toPurchaseResponses(purchases), nil
}

// UpdatePurchase applies only the fields present in the request.
func (s *purchaseService) UpdatePurchase(ctx context.Context, id uint, req domain.UpdatePurchaseRequest) (domain.PurchaseResponse, error) {
	purchase, err := s.purchaseRepository.GetPurchaseByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PurchaseResponse{}, domain.ErrPurchaseNotFound
		}
		return domain.PurchaseResponse{}, err
	}

	if req.Quantity != nil {
		purchase.Quantity = *req.Quantity
	}
	if req.Price != nil {
		purchase.Price = *req.Price
	}
	if req.OnSale != nil {
		purchase.OnSale = *req.OnSale
	}
	if req.Purchased != nil {
		purchase.Purchased = *req.Purchased
	}
	if req.InputDate != nil {
		inputDate, err := time.Parse(time.RFC3339, *req.InputDate)
		if err != nil {
			return domain.PurchaseResponse{}, domain.ErrInvalidInputDate
		}
		purchase.InputDate = inputDate
	}

	if err := s.purchaseRepository.UpdatePurchase(ctx, purchase); err != nil {
		return domain.PurchaseResponse{}, err
	}

	return toPurchaseResponse(purchase), nil
}

// DeletePurchase removes the row and returns its last-known state. A missing
// id is an error here, unlike grocery list deletion; the asymmetry is
// inherited contract.
func (s *purchaseService) DeletePurchase(ctx context.Context, id uint) (domain.PurchaseResponse, error) {
	purchase, err := s.purchaseRepository.GetPurchaseByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PurchaseResponse{}, domain.ErrPurchaseNotFound
		}
		return domain.PurchaseResponse{}, err
	}

	if err := s.purchaseRepository.DeletePurchase(ctx, id); err != nil {
		return domain.PurchaseResponse{}, err
	}

	return toPurchaseResponse(purchase), nil
}

func toPurchaseResponse(purchase *entities.Purchase) domain.PurchaseResponse {
	return domain.PurchaseResponse{
		ID:        purchase.ID,
		ProductID: purchase.ProductID,
		CartID:    purchase.CartID,
		Quantity:  purchase.Quantity,
		Price:     purchase.Price,
		OnSale:    purchase.OnSale,
		Purchased: purchase.Purchased,
		InputDate: purchase.InputDate,
	}
}

func toPurchaseResponses(purchases []*entities.Purchase) []domain.PurchaseResponse {
	response := make([]domain.PurchaseResponse, 0, len(purchases))
	for _, purchase := range purchases {
		response = append(response, toPurchaseResponse(purchase))
	}
	return response
}
