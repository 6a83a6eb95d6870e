package http

import (
	"context"
	"io"
	"net/http"

	"github.com/beatfluencer/beatfluencer-api/internal/config"
	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/internal/service"
	"github.com/beatfluencer/beatfluencer-api/internal/utils"
	"github.com/beatfluencer/beatfluencer-api/models"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

type fakeAuthService struct {
	registerFn     func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	authenticateFn func(ctx context.Context, token string) (models.User, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if f.registerFn != nil {
		return f.registerFn(ctx, req)
	}
	return models.User{}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, req)
	}
	return models.LoginResponse{}, nil
}

func (f *fakeAuthService) Authenticate(ctx context.Context, token string) (models.User, error) {
	if f.authenticateFn != nil {
		return f.authenticateFn(ctx, token)
	}
	return models.User{}, service.ErrTokenIsExpiredOrInvalid
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return models.Token{}, nil
}

func (f *fakeAuthService) ParseToken(ctx context.Context, token string) (models.Token, error) {
	return models.Token{}, nil
}

type fakeUserService struct {
	listFn func(ctx context.Context) ([]models.User, error)
}

func (f *fakeUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeUserService) EnsureUser(ctx context.Context, req models.RegisterRequest) (bool, error) {
	return false, nil
}

type fakeInfluencerService struct {
	createFn   func(ctx context.Context, req models.InfluencerCreateRequest) (models.Influencer, error)
	getFn      func(ctx context.Context, id string, viewer models.User) (models.Influencer, error)
	listFn     func(ctx context.Context, q models.InfluencerListQuery, viewer models.User) ([]models.Influencer, error)
	searchFn   func(ctx context.Context, q models.InfluencerSearchQuery, viewer models.User) ([]models.Influencer, error)
	checkURLFn func(ctx context.Context, url string) (bool, error)
}

func (f *fakeInfluencerService) Create(ctx context.Context, req models.InfluencerCreateRequest) (models.Influencer, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return models.Influencer{}, nil
}

func (f *fakeInfluencerService) Get(ctx context.Context, id string, viewer models.User) (models.Influencer, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id, viewer)
	}
	return models.Influencer{}, nil
}

func (f *fakeInfluencerService) List(ctx context.Context, q models.InfluencerListQuery, viewer models.User) ([]models.Influencer, error) {
	if f.listFn != nil {
		return f.listFn(ctx, q, viewer)
	}
	return nil, nil
}

func (f *fakeInfluencerService) Search(ctx context.Context, q models.InfluencerSearchQuery, viewer models.User) ([]models.Influencer, error) {
	if f.searchFn != nil {
		return f.searchFn(ctx, q, viewer)
	}
	return nil, nil
}

func (f *fakeInfluencerService) CheckSocialURL(ctx context.Context, url string) (bool, error) {
	if f.checkURLFn != nil {
		return f.checkURLFn(ctx, url)
	}
	return false, nil
}

type fakeBrandService struct {
	createFn func(ctx context.Context, req models.BrandCreateRequest) (models.Brand, error)
	listFn   func(ctx context.Context) ([]models.Brand, error)
}

func (f *fakeBrandService) Create(ctx context.Context, req models.BrandCreateRequest) (models.Brand, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return models.Brand{}, nil
}

func (f *fakeBrandService) List(ctx context.Context) ([]models.Brand, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

type fakeCampaignService struct {
	createFn func(ctx context.Context, req models.CampaignCreateRequest) (models.Campaign, error)
	listFn   func(ctx context.Context) ([]models.Campaign, error)
}

func (f *fakeCampaignService) Create(ctx context.Context, req models.CampaignCreateRequest) (models.Campaign, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return models.Campaign{}, nil
}

func (f *fakeCampaignService) List(ctx context.Context) ([]models.Campaign, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

type fakeUploadService struct {
	storeFn func(ctx context.Context, name string, r io.Reader) (models.UploadedFile, error)
	openFn  func(ctx context.Context, name string) (io.ReadCloser, error)
}

func (f *fakeUploadService) Store(ctx context.Context, name string, r io.Reader) (models.UploadedFile, error) {
	if f.storeFn != nil {
		return f.storeFn(ctx, name, r)
	}
	return models.UploadedFile{}, nil
}

func (f *fakeUploadService) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if f.openFn != nil {
		return f.openFn(ctx, name)
	}
	return nil, service.ErrFileNotFound
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

type fakeLimiter struct {
	allowFn func(ctx context.Context, key string) (bool, error)
	keys    []string
}

func (f *fakeLimiter) Allow(ctx context.Context, key string) (bool, error) {
	f.keys = append(f.keys, key)
	if f.allowFn != nil {
		return f.allowFn(ctx, key)
	}
	return true, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newFakeServices returns a service container where every service is a fake
// with default behaviour.
func newFakeServices() *service.Services {
	return &service.Services{
		AuthService:       &fakeAuthService{},
		UserService:       &fakeUserService{},
		InfluencerService: &fakeInfluencerService{},
		BrandService:      &fakeBrandService{},
		CampaignService:   &fakeCampaignService{},
		UploadService:     &fakeUploadService{},
		AppInfoService:    &fakeAppInfoService{version: "test-version"},
	}
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, nil, config.Server{CORSOrigins: []string{"*"}}, logger.Nop())
}

// withUser returns r carrying user as the authenticated caller.
func withUser(r *http.Request, user models.User) *http.Request {
	return r.WithContext(utils.WithUser(r.Context(), user))
}

var (
	adminUser = models.User{ID: "admin-id", Email: "admin@beatfluencer.com", Role: models.RoleAdmin}
	cmUser    = models.User{ID: "cm-id", Email: "cm_new@test.com", Role: models.RoleCampaignManager}
	imUser    = models.User{ID: "im-id", Email: "im@test.com", Role: models.RoleInfluencerManager}
)
