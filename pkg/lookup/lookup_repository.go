package lookup

import (
	"context"

	"grocery-tracker/entities"

	"gorm.io/gorm"
)

type (
	LookupRepository interface {
		CreatePackagingOption(ctx context.Context, option *entities.PackagingOption) error
		GetPackagingOptionByID(ctx context.Context, id uint) (*entities.PackagingOption, error)
		GetPackagingOptions(ctx context.Context) ([]*entities.PackagingOption, error)
		CreateUnitOfMeasurement(ctx context.Context, unit *entities.UnitOfMeasurement) error
		GetUnitOfMeasurementByID(ctx context.Context, id uint) (*entities.UnitOfMeasurement, error)
		GetUnitsOfMeasurement(ctx context.Context) ([]*entities.UnitOfMeasurement, error)
	}

	lookupRepository struct {
		db *gorm.DB
	}
)

func NewLookupRepository(db *gorm.DB) LookupRepository {
	return &lookupRepository{db: db}
}

func (r *lookupRepository) CreatePackagingOption(ctx context.Context, option *entities.PackagingOption) error {
	return r.db.WithContext(ctx).Create(option).Error
}

func (r *lookupRepository) GetPackagingOptionByID(ctx context.Context, id uint) (*entities.PackagingOption, error) {
	var option entities.PackagingOption
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&option).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *lookupRepository) GetPackagingOptions(ctx context.Context) ([]*entities.PackagingOption, error) {
	var options []*entities.PackagingOption
	if err := r.db.WithContext(ctx).Order("id asc").Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (r *lookupRepository) CreateUnitOfMeasurement(ctx context.Context, unit *entities.UnitOfMeasurement) error {
	return r.db.WithContext(ctx).Create(unit).Error
}

func (r *lookupRepository) GetUnitOfMeasurementByID(ctx context.Context, id uint) (*entities.UnitOfMeasurement, error) {
	var unit entities.UnitOfMeasurement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&unit).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *lookupRepository) GetUnitsOfMeasurement(ctx context.Context) ([]*entities.UnitOfMeasurement, error) {
	var units []*entities.UnitOfMeasurement
	if err := r.db.WithContext(ctx).Order("id asc").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}
