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

type campaignService struct {
	campaignRepository store.CampaignRepository
	validator          validators.Validator
	ids                utils.IDGenerator

	now    func() time.Time
	logger *logger.Logger
}

func NewCampaignService(campaignRepository store.CampaignRepository, validator validators.Validator, logger *logger.Logger) CampaignService {
	return &campaignService{
		campaignRepository: campaignRepository,
		validator:          validator,
		ids:                utils.NewUUIDGenerator(),
		now:                utcNow,
		logger:             logger,
	}
}

// Create stores a campaign. The brand and influencer references are not
// checked against existing records.
func (s *campaignService) Create(ctx context.Context, req models.CampaignCreateRequest) (models.Campaign, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := s.now()
	campaign := req.ToCampaign()
	campaign.ID = s.ids.Generate()
	campaign.CreatedAt = now
	campaign.UpdatedAt = now

	if err := s.campaignRepository.Create(ctx, campaign); err != nil {
		return models.Campaign{}, fmt.Errorf("campaign creation ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Str("campaign_id", campaign.ID).Str("brand_id", campaign.BrandID).Msg("campaign created")
	return campaign, nil
}

func (s *campaignService) List(ctx context.Context) ([]models.Campaign, error) {
	campaigns, err := s.campaignRepository.List(ctx, store.ListLimit)
	if err != nil {
		return nil, fmt.Errorf("listing campaigns failed: %w", err)
	}

	return campaigns, nil
}
