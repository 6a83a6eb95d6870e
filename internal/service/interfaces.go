package service

import (
	"context"
	"io"

	"github.com/beatfluencer/beatfluencer-api/models"
)

// AuthService registers and authenticates back-office users and manages
// their bearer tokens.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// Login checks the credentials, records the login and issues a token.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	// Authenticate resolves the user a bearer token was issued to.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService lists and bootstraps user accounts.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	// EnsureUser creates the account unless one with the same e-mail exists.
	// It reports whether a user was created.
	EnsureUser(ctx context.Context, req models.RegisterRequest) (bool, error)
}

// InfluencerService manages influencer profiles. Every read applies the
// viewer's redaction policy.
type InfluencerService interface {
	Create(ctx context.Context, req models.InfluencerCreateRequest) (models.Influencer, error)
	Get(ctx context.Context, id string, viewer models.User) (models.Influencer, error)
	List(ctx context.Context, query models.InfluencerListQuery, viewer models.User) ([]models.Influencer, error)
	Search(ctx context.Context, query models.InfluencerSearchQuery, viewer models.User) ([]models.Influencer, error)
	CheckSocialURL(ctx context.Context, url string) (bool, error)
}

type BrandService interface {
	Create(ctx context.Context, req models.BrandCreateRequest) (models.Brand, error)
	List(ctx context.Context) ([]models.Brand, error)
}

type CampaignService interface {
	Create(ctx context.Context, req models.CampaignCreateRequest) (models.Campaign, error)
	List(ctx context.Context) ([]models.Campaign, error)
}

// UploadService stores uploaded files under generated names.
type UploadService interface {
	Store(ctx context.Context, originalName string, r io.Reader) (models.UploadedFile, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
