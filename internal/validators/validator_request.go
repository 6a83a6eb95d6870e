// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/beatfluencer/beatfluencer-api/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername       = "username"
	FieldEmail          = "email"
	FieldPassword       = "password"
	FieldRole           = "role"
	FieldAccountType    = "account_type"
	FieldName           = "name"
	FieldGender         = "gender"
	FieldDateOfBirth    = "date_of_birth"
	FieldExperience     = "experience_years"
	FieldSocialAccounts = "social_media_accounts"
	FieldLegalName      = "legal_name"
	FieldBrandID        = "brand_id"
	FieldCampaignName   = "campaign_name"
	FieldCampaignDates  = "campaign_dates"
	FieldBudget         = "budget"
	FieldStatus         = "status"
	FieldBounds         = "bounds"
)

// maxPasswordBytes is the bcrypt input limit.
const maxPasswordBytes = 72

// RequestValidator implements [Validator] for the API request models.
// Both value and pointer forms are accepted.
type RequestValidator struct{}

// NewRequestValidator returns a [Validator] for the API request models.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.InfluencerCreateRequest:
		return v.validateInfluencer(value, fields...)
	case *models.InfluencerCreateRequest:
		return v.validateInfluencer(*value, fields...)

	case models.BrandCreateRequest:
		return v.validateBrand(value, fields...)
	case *models.BrandCreateRequest:
		return v.validateBrand(*value, fields...)

	case models.CampaignCreateRequest:
		return v.validateCampaign(value, fields...)
	case *models.CampaignCreateRequest:
		return v.validateCampaign(*value, fields...)

	case models.InfluencerSearchQuery:
		return v.validateSearch(value, fields...)
	case *models.InfluencerSearchQuery:
		return v.validateSearch(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(req.Username) == "" {
				return ErrInvalidUsername
			}
		case FieldEmail:
			if !isEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(req.Password) == 0 || len(req.Password) > maxPasswordBytes {
				return ErrInvalidPassword
			}
		case FieldRole:
			if !req.Role.IsValid() {
				return ErrInvalidRole
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *RequestValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			// no shape rule: a bad password is a credentials failure, not bad input
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *RequestValidator) validateInfluencer(req models.InfluencerCreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccountType, FieldName, FieldEmail, FieldGender, FieldDateOfBirth, FieldExperience, FieldSocialAccounts}
	}

	for _, f := range fields {
		switch f {
		case FieldAccountType:
			if !req.AccountType.IsValid() {
				return ErrInvalidAccountType
			}
		case FieldName:
			if strings.TrimSpace(req.Name) == "" {
				return ErrInvalidName
			}
		case FieldEmail:
			if !isEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldGender:
			if !req.Gender.IsValid() {
				return ErrInvalidGender
			}
		case FieldDateOfBirth:
			if req.DateOfBirth.IsZero() {
				return ErrInvalidDateOfBirth
			}
		case FieldExperience:
			if !models.IsValidExperience(req.ExperienceYears) {
				return ErrInvalidExperience
			}
		case FieldSocialAccounts:
			for i, acc := range req.SocialMediaAccounts {
				if strings.TrimSpace(acc.Platform) == "" || strings.TrimSpace(acc.URL) == "" {
					return fmt.Errorf("%w: account %d", ErrInvalidSocialAccount, i)
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *RequestValidator) validateBrand(req models.BrandCreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLegalName}
	}

	for _, f := range fields {
		switch f {
		case FieldLegalName:
			if strings.TrimSpace(req.LegalName) == "" {
				return ErrInvalidLegalName
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *RequestValidator) validateCampaign(req models.CampaignCreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBrandID, FieldCampaignName, FieldCampaignDates, FieldBudget, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldBrandID:
			if strings.TrimSpace(req.BrandID) == "" {
				return ErrInvalidBrandID
			}
		case FieldCampaignName:
			if strings.TrimSpace(req.CampaignName) == "" {
				return ErrInvalidCampaignName
			}
		case FieldCampaignDates:
			if req.StartDate.IsZero() || req.EndDate.IsZero() {
				return ErrInvalidCampaignDates
			}
		case FieldBudget:
			if req.Budget < 0 {
				return ErrInvalidBudget
			}
		case FieldStatus:
			if !req.Status.IsValid() {
				return ErrInvalidStatus
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *RequestValidator) validateSearch(q models.InfluencerSearchQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBounds}
	}

	for _, f := range fields {
		switch f {
		case FieldBounds:
			if q.MinFollowers < 0 || q.MaxFollowers < 0 || q.MinAge < 0 || q.MaxAge < 0 {
				return ErrInvalidFollowerRange
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

// isEmail accepts a bare address ("a@b.c"), not a display-name form.
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
