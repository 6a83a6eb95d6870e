package service

import (
	"fmt"

	"github.com/beatfluencer/beatfluencer-api/internal/config"
	"github.com/beatfluencer/beatfluencer-api/internal/crypto"
	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/internal/store"
	"github.com/beatfluencer/beatfluencer-api/internal/validators"
)

type Services struct {
	AuthService       AuthService
	UserService       UserService
	InfluencerService InfluencerService
	BrandService      BrandService
	CampaignService   CampaignService
	UploadService     UploadService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher := crypto.NewPasswordHasher(cfg.App.PasswordHashKey)
	validator := validators.NewRequestValidator()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, hasher, validator, cfg.App, logger),
		UserService:       NewUserService(storages.UserRepository, hasher, logger),
		InfluencerService: NewInfluencerService(storages.InfluencerRepository, validator, logger),
		BrandService:      NewBrandService(storages.BrandRepository, validator, logger),
		CampaignService:   NewCampaignService(storages.CampaignRepository, validator, logger),
		UploadService:     NewUploadService(storages.FileStorage, logger),
		AppInfoService:    appInfoService,
	}, nil
}
