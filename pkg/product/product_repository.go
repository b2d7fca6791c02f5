package product

import (
	"context"
	"strings"

	"grocery-tracker/domain"
	"grocery-tracker/entities"

	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		CreateProduct(ctx context.Context, product *entities.Product) error
		GetProductByID(ctx context.Context, id uint) (*entities.Product, error)
		GetProducts(ctx context.Context, skip, limit int) ([]*entities.Product, error)
		SearchProducts(ctx context.Context, term string, skip, limit int) ([]*entities.Product, error)
		QueryProducts(ctx context.Context, filter domain.ProductQueryRequest) ([]*entities.Product, error)
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetProductByID(ctx context.Context, id uint) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetProducts(ctx context.Context, skip, limit int) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).
		Order("id asc").
		Offset(skip).
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) SearchProducts(ctx context.Context, term string, skip, limit int) ([]*entities.Product, error) {
	var products []*entities.Product
	pattern := "%" + strings.ToLower(term) + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(brand) LIKE ?", pattern, pattern).
		Order("id asc").
		Offset(skip).
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// QueryProducts applies only the filters present in the request; the filter
// set is closed, nothing from the caller reaches the store unexamined.
func (r *productRepository) QueryProducts(ctx context.Context, filter domain.ProductQueryRequest) ([]*entities.Product, error) {
	query := r.db.WithContext(ctx).Model(&entities.Product{})

	if filter.Brand != nil {
		query = query.Where("brand = ?", *filter.Brand)
	}
	if filter.Name != nil {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(*filter.Name)+"%")
	}
	if filter.Packaging != nil {
		query = query.Where("packaging = ?", *filter.Packaging)
	}
	if filter.UnitOfMeasurement != nil {
		query = query.Where("unit_of_measurement = ?", *filter.UnitOfMeasurement)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultLimit
	}

	var products []*entities.Product
	if err := query.
		Order("id asc").
		Offset(filter.Skip).
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
