package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername      = errors.New("username is required")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInvalidPassword      = errors.New("password must be between 1 and 72 bytes")
	ErrInvalidRole          = errors.New("invalid role")
	ErrInvalidAccountType   = errors.New("invalid account type")
	ErrInvalidName          = errors.New("name is required")
	ErrInvalidGender        = errors.New("invalid gender")
	ErrInvalidDateOfBirth   = errors.New("date of birth is required")
	ErrInvalidExperience    = errors.New("invalid experience years")
	ErrInvalidSocialAccount = errors.New("social media account requires platform and url")
	ErrInvalidLegalName     = errors.New("legal name is required")
	ErrInvalidBrandID       = errors.New("brand id is required")
	ErrInvalidCampaignName  = errors.New("campaign name is required")
	ErrInvalidCampaignDates = errors.New("start and end dates are required")
	ErrInvalidBudget        = errors.New("budget must not be negative")
	ErrInvalidStatus        = errors.New("invalid campaign status")
	ErrInvalidFollowerRange = errors.New("follower and age bounds must not be negative")
)
