package product

import (
	"context"
	"errors"
	"strings"

	"grocery-tracker/domain"
	"grocery-tracker/entities"

	"gorm.io/gorm"
)

type (
	ProductService interface {
		CreateProduct(ctx context.Context, req domain.CreateProductRequest) (domain.ProductResponse, error)
		GetProductByID(ctx context.Context, id uint) (domain.ProductResponse, error)
		GetProducts(ctx context.Context, skip, limit int) ([]domain.ProductResponse, error)
		SearchProducts(ctx context.Context, term string, skip, limit int) ([]domain.ProductResponse, error)
		QueryProducts(ctx context.Context, req domain.ProductQueryRequest) ([]domain.ProductResponse, error)
	}

	productService struct {
		productRepository ProductRepository
	}
)

func NewProductService(productRepository ProductRepository) ProductService {
	return &productService{productRepository: productRepository}
}

func (s *productService) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (domain.ProductResponse, error) {
	product := &entities.Product{
		Brand:             req.Brand,
		Name:              req.Name,
		Quantity:          req.Quantity,
		Packaging:         req.Packaging,
		UnitQuantity:      req.UnitQuantity,
		UnitOfMeasurement: req.UnitOfMeasurement,
	}

	if err := s.productRepository.CreateProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}

	return toProductResponse(product), nil
}

func (s *productService) GetProductByID(ctx context.Context, id uint) (domain.ProductResponse, error) {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductResponse{}, err
	}
	return toProductResponse(product), nil
}

func (s *productService) GetProducts(ctx context.Context, skip, limit int) ([]domain.ProductResponse, error) {
	products, err := s.productRepository.GetProducts(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

func (s *productService) SearchProducts(ctx context.Context, term string, skip, limit int) ([]domain.ProductResponse, error) {
	if strings.TrimSpace(term) == "" {
		return nil, domain.ErrEmptySearchTerm
	}

	products, err := s.productRepository.SearchProducts(ctx, term, skip, limit)
	if err != nil {
		return nil, err
	}

	if len(products) == 0 {
		return nil, domain.ErrNoProductsMatch
	}
	return toProductResponses(products), nil
}

func (s *productService) QueryProducts(ctx context.Context, req domain.ProductQueryRequest) ([]domain.ProductResponse, error) {
	products, err := s.productRepository.QueryProducts(ctx, req)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

func toProductResponse(product *entities.Product) domain.ProductResponse {
	return domain.ProductResponse{
		ID:                product.ID,
		Brand:             product.Brand,
		Name:              product.Name,
		Quantity:          product.Quantity,
		Packaging:         product.Packaging,
		UnitQuantity:      product.UnitQuantity,
		UnitOfMeasurement: product.UnitOfMeasurement,
	}
}

func toProductResponses(products []*entities.Product) []domain.ProductResponse {
	response := make([]domain.ProductResponse, 0, len(products))
	for _, product := range products {
		response = append(response, toProductResponse(product))
	}
	return response
}
