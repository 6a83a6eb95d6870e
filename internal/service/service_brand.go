package service

import (
	"context"
	"fmt"
	"time"

	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/internal/store"
	"github.com/beatfluencer/beatfluencer-api/internal/utils"
	"github.com/beatfluencer/beatfluencer-api/internal/validators"
	"github.com/beatfluencer/beatfluencer-api/models"
)

type brandService struct {
	brandRepository store.BrandRepository
	validator       validators.Validator
	ids             utils.IDGenerator

	now    func() time.Time
	logger *logger.Logger
}

func NewBrandService(brandRepository store.BrandRepository, validator validators.Validator, logger *logger.Logger) BrandService {
	return &brandService{
		brandRepository: brandRepository,
		validator:       validator,
		ids:             utils.NewUUIDGenerator(),
		now:             utcNow,
		logger:          logger,
	}
}

func (s *brandService) Create(ctx context.Context, req models.BrandCreateRequest) (models.Brand, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Brand{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := s.now()
	brand := req.ToBrand()
	brand.ID = s.ids.Generate()
	brand.CreatedAt = now
	brand.UpdatedAt = now

	if err := s.brandRepository.Create(ctx, brand); err != nil {
		return models.Brand{}, fmt.Errorf("brand creation ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Str("brand_id", brand.ID).Msg("brand created")
	return brand, nil
}

func (s *brandService) List(ctx context.Context) ([]models.Brand, error) {
	brands, err := s.brandRepository.List(ctx, store.ListLimit)
	if err != nil {
		return nil, fmt.Errorf("listing brands failed: %w", err)
	}

	return brands, nil
}
