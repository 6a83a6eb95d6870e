package store

import (
	"context"
	"io"
	"time"

	"github.com/beatfluencer/beatfluencer-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Result caps applied by callers to unbounded listings.
const (
	ListLimit   int64 = 1000
	SearchLimit int64 = 100
)

// UserRepository persists back-office accounts. E-mail is unique.
type UserRepository interface {
	// Create inserts a user. A taken e-mail yields ErrEmailAlreadyExists.
	Create(ctx context.Context, user models.User) error
	// FindByEmail returns the user with the given e-mail or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (models.User, error)
	// List returns up to limit users.
	List(ctx context.Context, limit int64) ([]models.User, error)
	// UpdateLoginInfo records a successful login. A non-empty passwordHash
	// replaces the stored digest.
	UpdateLoginInfo(ctx context.Context, userID string, lastLogin time.Time, passwordHash string) error
}

// InfluencerRepository persists influencer profiles. E-mail is unique.
type InfluencerRepository interface {
	Create(ctx context.Context, influencer models.Influencer) error
	// FindByID returns the influencer or ErrInfluencerNotFound.
	FindByID(ctx context.Context, id string) (models.Influencer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// ExistsBySocialURL reports whether any social account has exactly url.
	ExistsBySocialURL(ctx context.Context, url string) (bool, error)
	Find(ctx context.Context, filter models.InfluencerFilter) ([]models.Influencer, error)
}

type BrandRepository interface {
	Create(ctx context.Context, brand models.Brand) error
	List(ctx context.Context, limit int64) ([]models.Brand, error)
}

type CampaignRepository interface {
	Create(ctx context.Context, campaign models.Campaign) error
	List(ctx context.Context, limit int64) ([]models.Campaign, error)
}

// FileStorage keeps uploaded files under flat names.
type FileStorage interface {
	// Save writes r under name. Names must not contain path separators.
	Save(ctx context.Context, name string, r io.Reader) error
	// Open returns the stored content or ErrFileNotFound.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
