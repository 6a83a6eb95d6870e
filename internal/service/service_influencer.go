package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/internal/policy"
	"github.com/beatfluencer/beatfluencer-api/internal/store"
	"github.com/beatfluencer/beatfluencer-api/internal/utils"
	"github.com/beatfluencer/beatfluencer-api/internal/validators"
	"github.com/beatfluencer/beatfluencer-api/models"
)

const (
	// daysPerAgeYear is the fixed year length used to turn ages into birth dates.
	daysPerAgeYear = 365
	// maxAgeYears caps age bounds so the day offset stays in range.
	maxAgeYears = 10000
)

type influencerService struct {
	influencerRepository store.InfluencerRepository
	validator            validators.Validator
	ids                  utils.IDGenerator

	now    func() time.Time
	logger *logger.Logger
}

func NewInfluencerService(influencerRepository store.InfluencerRepository, validator validators.Validator, logger *logger.Logger) InfluencerService {
	return &influencerService{
		influencerRepository: influencerRepository,
		validator:            validator,
		ids:                  utils.NewUUIDGenerator(),
		now:                  utcNow,
		logger:               logger,
	}
}

// Create stores a new influencer. Verification status is always false on
// creation and the record is returned unredacted.
func (s *influencerService) Create(ctx context.Context, req models.InfluencerCreateRequest) (models.Influencer, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Influencer{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	exists, err := s.influencerRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return models.Influencer{}, fmt.Errorf("influencer search by email failed: %w", err)
	}
	if exists {
		return models.Influencer{}, ErrInfluencerEmailExists
	}

	now := s.now()
	inf := req.ToInfluencer()
	inf.ID = s.ids.Generate()
	inf.VerificationStatus = false
	inf.CreatedAt = now
	inf.UpdatedAt = now

	if err = s.influencerRepository.Create(ctx, inf); err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.Influencer{}, ErrInfluencerEmailExists
		}
		return models.Influencer{}, fmt.Errorf("influencer creation ended with error: %w", err)
	}

	log.Info().Str("influencer_id", inf.ID).Str("status", inf.Status).Msg("influencer created")
	return inf, nil
}

func (s *influencerService) Get(ctx context.Context, id string, viewer models.User) (models.Influencer, error) {
	inf, err := s.influencerRepository.FindByID(ctx, id)
	if errors.Is(err, store.ErrInfluencerNotFound) {
		return models.Influencer{}, ErrInfluencerNotFound
	}
	if err != nil {
		return models.Influencer{}, fmt.Errorf("influencer search by id failed: %w", err)
	}

	return policy.Apply(inf, viewer.Role), nil
}

func (s *influencerService) List(ctx context.Context, query models.InfluencerListQuery, viewer models.User) ([]models.Influencer, error) {
	if query.Platform != "" {
		logger.FromContext(ctx).Debug().Str("platform", query.Platform).Msg("platform filter is not applied to listing")
	}

	infs, err := s.influencerRepository.Find(ctx, models.InfluencerFilter{
		Status:   query.Status,
		Category: query.Category,
		Limit:    store.ListLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("listing influencers failed: %w", err)
	}

	return policy.ApplyAll(infs, viewer.Role), nil
}

// Search returns published influencers matching query. Profile criteria are
// applied by the store; platform and follower bounds are then checked
// against each social account so that both hold for the same account.
func (s *influencerService) Search(ctx context.Context, query models.InfluencerSearchQuery, viewer models.User) ([]models.Influencer, error) {
	if err := s.validator.Validate(ctx, query); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	infs, err := s.influencerRepository.Find(ctx, s.searchFilter(query))
	if err != nil {
		return nil, fmt.Errorf("searching influencers failed: %w", err)
	}

	if query.HasAccountCriteria() {
		matched := make([]models.Influencer, 0, len(infs))
		for _, inf := range infs {
			if hasMatchingAccount(inf, query) {
				matched = append(matched, inf)
			}
		}
		infs = matched
	}

	return policy.ApplyAll(infs, viewer.Role), nil
}

// searchFilter builds the store criteria of a search. Older influencers have
// earlier birth dates, so min_age bounds date_of_birth from above.
func (s *influencerService) searchFilter(query models.InfluencerSearchQuery) models.InfluencerFilter {
	filter := models.InfluencerFilter{
		Status:   models.InfluencerStatusPublished,
		Text:     query.Q,
		Category: query.Category,
		Gender:   query.Gender,
		Division: query.Division,
		Limit:    store.SearchLimit,
	}

	now := s.now()
	if query.MinAge > 0 {
		bornBefore := birthDateBound(now, query.MinAge)
		filter.BornBefore = &bornBefore
	}
	if query.MaxAge > 0 {
		bornAfter := birthDateBound(now, query.MaxAge)
		filter.BornAfter = &bornAfter
	}

	return filter
}

// birthDateBound is the birth date of someone exactly age years old at now.
func birthDateBound(now time.Time, age int) time.Time {
	age = min(age, maxAgeYears)
	return now.AddDate(0, 0, -daysPerAgeYear*age)
}

func hasMatchingAccount(inf models.Influencer, query models.InfluencerSearchQuery) bool {
	for _, account := range inf.SocialMediaAccounts {
		if query.Platform != "" && !strings.EqualFold(account.Platform, query.Platform) {
			continue
		}
		if query.MinFollowers > 0 && account.FollowerCount < query.MinFollowers {
			continue
		}
		if query.MaxFollowers > 0 && account.FollowerCount > query.MaxFollowers {
			continue
		}
		return true
	}

	return false
}

// CheckSocialURL reports whether any influencer owns an account with the
// given URL. Surrounding whitespace is ignored.
func (s *influencerService) CheckSocialURL(ctx context.Context, url string) (bool, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return false, fmt.Errorf("%w: empty url", ErrInvalidDataProvided)
	}

	exists, err := s.influencerRepository.ExistsBySocialURL(ctx, url)
	if err != nil {
		return false, fmt.Errorf("social url lookup failed: %w", err)
	}

	return exists, nil
}
