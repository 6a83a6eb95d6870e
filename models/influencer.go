// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AccountType classifies an influencer profile.
type AccountType string

const (
	AccountTypePersonal AccountType = "personal"
	AccountTypeBusiness AccountType = "business"
	AccountTypeCreator  AccountType = "creator"
)

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypePersonal, AccountTypeBusiness, AccountTypeCreator:
		return true
	}
	return false
}

// Gender of an influencer.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOthers Gender = "others"
)

// IsValid reports whether g is a known gender value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOthers:
		return true
	}
	return false
}

// InfluencerStatusDraft is assigned to new influencers that do not carry a status.
// Only influencers with InfluencerStatusPublished are visible to search.
const (
	InfluencerStatusDraft     = "draft"
	InfluencerStatusPublished = "published"
)

// experience buckets accepted in Influencer.ExperienceYears.
var experienceBuckets = map[string]struct{}{
	"0-1": {},
	"1-3": {},
	"3-5": {},
	"5+":  {},
}

// IsValidExperience reports whether s is one of the accepted experience buckets.
func IsValidExperience(s string) bool {
	_, ok := experienceBuckets[s]
	return ok
}

// SocialMediaAccount is a single channel owned by an influencer.
type SocialMediaAccount struct {
	Platform           string  `json:"platform" bson:"platform"`
	ChannelName        string  `json:"channel_name" bson:"channel_name"`
	URL                string  `json:"url" bson:"url"`
	FollowerCount      int64   `json:"follower_count" bson:"follower_count"`
	VerificationStatus bool    `json:"verification_status" bson:"verification_status"`
	CPV                float64 `json:"cpv" bson:"cpv"`
	CreatedYear        int     `json:"created_year" bson:"created_year"`
	CreatedMonth       int     `json:"created_month" bson:"created_month"`
}

// SuccessfulCampaign is a showcase entry on an influencer profile.
type SuccessfulCampaign struct {
	Title    string  `json:"title" bson:"title"`
	Link     string  `json:"link" bson:"link"`
	Metrics  string  `json:"metrics" bson:"metrics"`
	MediaURL *string `json:"media_url" bson:"media_url"`
}

// RemunerationService is a priced service the influencer offers.
type RemunerationService struct {
	ServiceName string  `json:"service_name" bson:"service_name"`
	Rate        float64 `json:"rate" bson:"rate"`
}

// DedicatedBrand is a brand the influencer works with exclusively.
type DedicatedBrand struct {
	Name    string  `json:"name" bson:"name"`
	LogoURL *string `json:"logo_url" bson:"logo_url"`
}

// Influencer is a talent profile. Remuneration, contact and payment fields are
// sensitive and are redacted for some roles before leaving the service.
type Influencer struct {
	ID           string      `json:"id" bson:"id"`
	AccountType  AccountType `json:"account_type" bson:"account_type"`
	Name         string      `json:"name" bson:"name"`
	Email        string      `json:"email" bson:"email"`
	Phone        string      `json:"phone" bson:"phone"`
	Address      string      `json:"address" bson:"address"`
	Division     string      `json:"division" bson:"division"`
	Gender       Gender      `json:"gender" bson:"gender"`
	DateOfBirth  time.Time   `json:"date_of_birth" bson:"date_of_birth"`
	Bio          *string     `json:"bio" bson:"bio"`
	ProfileImage *string     `json:"profile_image" bson:"profile_image"`

	Categories           []string              `json:"categories" bson:"categories"`
	RemunerationServices []RemunerationService `json:"remuneration_services" bson:"remuneration_services"`

	ExperienceYears     string               `json:"experience_years" bson:"experience_years"`
	TotalCampaigns      int                  `json:"total_campaigns" bson:"total_campaigns"`
	AffiliatedBrands    []string             `json:"affiliated_brands" bson:"affiliated_brands"`
	DedicatedBrands     []DedicatedBrand     `json:"dedicated_brands" bson:"dedicated_brands"`
	SuccessfulCampaigns []SuccessfulCampaign `json:"successful_campaigns" bson:"successful_campaigns"`
	IndustriesWorked    []string             `json:"industries_worked" bson:"industries_worked"`

	BeneficiaryName *string `json:"beneficiary_name" bson:"beneficiary_name"`
	AccountNumber   *string `json:"account_number" bson:"account_number"`
	TINNumber       *string `json:"tin_number" bson:"tin_number"`
	BankName        *string `json:"bank_name" bson:"bank_name"`

	FeaturedCategory bool `json:"featured_category" bson:"featured_category"`
	FeaturedCreators bool `json:"featured_creators" bson:"featured_creators"`

	SocialMediaAccounts []SocialMediaAccount `json:"social_media_accounts" bson:"social_media_accounts"`

	VerificationStatus bool      `json:"verification_status" bson:"verification_status"`
	Status             string    `json:"status" bson:"status"`
	CreatedAt          time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" bson:"updated_at"`
}

// TableName returns the name of the collection (or table) holding influencers.
func (i Influencer) TableName() string {
	return "influencers"
}

// NormalizeLists replaces nil slices with empty ones so that list fields are
// always encoded as JSON arrays.
func (i *Influencer) NormalizeLists() {
	if i.Categories == nil {
		i.Categories = []string{}
	}
	if i.RemunerationServices == nil {
		i.RemunerationServices = []RemunerationService{}
	}
	if i.AffiliatedBrands == nil {
		i.AffiliatedBrands = []string{}
	}
	if i.DedicatedBrands == nil {
		i.DedicatedBrands = []DedicatedBrand{}
	}
	if i.SuccessfulCampaigns == nil {
		i.SuccessfulCampaigns = []SuccessfulCampaign{}
	}
	if i.IndustriesWorked == nil {
		i.IndustriesWorked = []string{}
	}
	if i.SocialMediaAccounts == nil {
		i.SocialMediaAccounts = []SocialMediaAccount{}
	}
}

// InfluencerCreateRequest is the body of POST /api/influencers. Server-owned
// fields (id, verification status, timestamps) are not accepted from clients.
type InfluencerCreateRequest struct {
	AccountType  AccountType `json:"account_type"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	Division     string      `json:"division"`
	Gender       Gender      `json:"gender"`
	DateOfBirth  time.Time   `json:"date_of_birth"`
	Bio          *string     `json:"bio"`
	ProfileImage *string     `json:"profile_image"`

	Categories           []string              `json:"categories"`
	RemunerationServices []RemunerationService `json:"remuneration_services"`

	ExperienceYears     string               `json:"experience_years"`
	TotalCampaigns      int                  `json:"total_campaigns"`
	AffiliatedBrands    []string             `json:"affiliated_brands"`
	DedicatedBrands     []DedicatedBrand     `json:"dedicated_brands"`
	SuccessfulCampaigns []SuccessfulCampaign `json:"successful_campaigns"`
	IndustriesWorked    []string             `json:"industries_worked"`

	BeneficiaryName *string `json:"beneficiary_name"`
	AccountNumber   *string `json:"account_number"`
	TINNumber       *string `json:"tin_number"`
	BankName        *string `json:"bank_name"`

	FeaturedCategory bool `json:"featured_category"`
	FeaturedCreators bool `json:"featured_creators"`

	SocialMediaAccounts []SocialMediaAccount `json:"social_media_accounts"`

	Status string `json:"status"`
}

// ToInfluencer copies the request into a new Influencer without server-owned
// fields. Status defaults to InfluencerStatusDraft.
func (r InfluencerCreateRequest) ToInfluencer() Influencer {
	status := r.Status
	if status == "" {
		status = InfluencerStatusDraft
	}

	inf := Influencer{
		AccountType:          r.AccountType,
		Name:                 r.Name,
		Email:                r.Email,
		Phone:                r.Phone,
		Address:              r.Address,
		Division:             r.Division,
		Gender:               r.Gender,
		DateOfBirth:          r.DateOfBirth,
		Bio:                  r.Bio,
		ProfileImage:         r.ProfileImage,
		Categories:           r.Categories,
		RemunerationServices: r.RemunerationServices,
		ExperienceYears:      r.ExperienceYears,
		TotalCampaigns:       r.TotalCampaigns,
		AffiliatedBrands:     r.AffiliatedBrands,
		DedicatedBrands:      r.DedicatedBrands,
		SuccessfulCampaigns:  r.SuccessfulCampaigns,
		IndustriesWorked:     r.IndustriesWorked,
		BeneficiaryName:      r.BeneficiaryName,
		AccountNumber:        r.AccountNumber,
		TINNumber:            r.TINNumber,
		BankName:             r.BankName,
		FeaturedCategory:     r.FeaturedCategory,
		FeaturedCreators:     r.FeaturedCreators,
		SocialMediaAccounts:  r.SocialMediaAccounts,
		Status:               status,
	}
	inf.NormalizeLists()

	return inf
}
