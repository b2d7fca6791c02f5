package lookup

import (
	"context"
	"errors"

	"grocery-tracker/domain"
	"grocery-tracker/entities"

	"gorm.io/gorm"
)

type (
	LookupService interface {
		CreatePackagingOption(ctx context.Context, req domain.CreatePackagingOptionRequest) (domain.PackagingOptionResponse, error)
		GetPackagingOptionByID(ctx context.Context, id uint) (domain.PackagingOptionResponse, error)
		GetPackagingOptions(ctx context.Context) ([]domain.PackagingOptionResponse, error)
		CreateUnitOfMeasurement(ctx context.Context, req domain.CreateUnitOfMeasurementRequest) (domain.UnitOfMeasurementResponse, error)
		GetUnitOfMeasurementByID(ctx context.Context, id uint) (domain.UnitOfMeasurementResponse, error)
		GetUnitsOfMeasurement(ctx context.Context) ([]domain.UnitOfMeasurementResponse, error)
	}

	lookupService struct {
		lookupRepository LookupRepository
	}
)

func NewLookupService(lookupRepository LookupRepository) LookupService {
	return &lookupService{lookupRepository: lookupRepository}
}

func (s *lookupService) CreatePackagingOption(ctx context.Context, req domain.CreatePackagingOptionRequest) (domain.PackagingOptionResponse, error) {
	option := &entities.PackagingOption{PackagingType: req.PackagingType}
	if err := s.lookupRepository.CreatePackagingOption(ctx, option); err != nil {
		return domain.PackagingOptionResponse{}, err
	}
	return toPackagingOptionResponse(option), nil
}

func (s *lookupService) GetPackagingOptionByID(ctx context.Context, id uint) (domain.PackagingOptionResponse, error) {
	option, err := s.lookupRepository.GetPackagingOptionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PackagingOptionResponse{}, domain.ErrPackagingOptionNotFound
		}
		return domain.PackagingOptionResponse{}, err
	}
	return toPackagingOptionResponse(option), nil
}

func (s *lookupService) GetPackagingOptions(ctx context.Context) ([]domain.PackagingOptionResponse, error) {
	options, err := s.lookupRepository.GetPackagingOptions(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.PackagingOptionResponse, 0, len(options))
	for _, option := range options {
		response = append(response, toPackagingOptionResponse(option))
	}
	return response, nil
}

func (s *lookupService) CreateUnitOfMeasurement(ctx context.Context, req domain.CreateUnitOfMeasurementRequest) (domain.UnitOfMeasurementResponse, error) {
	unit := &entities.UnitOfMeasurement{UnitName: req.UnitName}
	if err := s.lookupRepository.CreateUnitOfMeasurement(ctx, unit); err != nil {
		return domain.UnitOfMeasurementResponse{}, err
	}
	return toUnitOfMeasurementResponse(unit), nil
}

func (s *lookupService) GetUnitOfMeasurementByID(ctx context.Context, id uint) (domain.UnitOfMeasurementResponse, error) {
	unit, err := s.lookupRepository.GetUnitOfMeasurementByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UnitOfMeasurementResponse{}, domain.ErrUnitOfMeasurementNotFound
		}
		return domain.UnitOfMeasurementResponse{}, err
	}
	return toUnitOfMeasurementResponse(unit), nil
}

func (s *lookupService) GetUnitsOfMeasurement(ctx context.Context) ([]domain.UnitOfMeasurementResponse, error) {
	units, err := s.lookupRepository.GetUnitsOfMeasurement(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.UnitOfMeasurementResponse, 0, len(units))
	for _, unit := range units {
		response = append(response, toUnitOfMeasurementResponse(unit))
	}
	return response, nil
}

func toPackagingOptionResponse(option *entities.PackagingOption) domain.PackagingOptionResponse {
	return domain.PackagingOptionResponse{
		ID:            option.ID,
		PackagingType: option.PackagingType,
	}
}

func toUnitOfMeasurementResponse(unit *entities.UnitOfMeasurement) domain.UnitOfMeasurementResponse {
	return domain.UnitOfMeasurementResponse{
		ID:       unit.ID,
		UnitName: unit.UnitName,
	}
}
